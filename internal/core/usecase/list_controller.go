package usecase

import (
	"context"
	"strings"
	"sync"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

// ListFetcher - функция выборки одной страницы сущностей у платформы.
type ListFetcher[T any] func(ctx context.Context, page, size int) (domain.Page[T], error)

// ListController - общий списочный контроллер. Шесть списков консоли
// отличаются только выборкой, полями поиска и счетчиком дашборда,
// остальное поведение (пагинация, фильтр, обнуление при сбое) одно.
//
// Контроллер долгоживущий и разделяемый между запросами, поэтому все
// операции под мьютексом. Координации запросов нет: при параллельных
// загрузках побеждает последний завершившийся ответ.
type ListController[T any] struct {
	mu sync.Mutex

	name       string
	counterKey domain.CounterKey
	dashboard  port.DashboardStorePort

	fetch ListFetcher[T]

	// match - предикат клиентского поиска по подстроке.
	match func(item T, term string) bool

	// categoryOf - значение для фильтра по категории, nil если
	// у списка такого фильтра нет.
	categoryOf func(item T) string

	// counterValue - чем кормить счетчик дашборда. По умолчанию
	// totalElements ответа.
	counterValue func(page domain.Page[T]) int64

	// rowID - идентификатор строки для состояния меню действий.
	rowID func(item T) int64

	pageSize      int
	page          int
	totalPages    int
	totalElements int64
	items         []T
	lastErr       error

	searchTerm     string
	categoryFilter string

	// Открытость меню действий хранится явно в контроллере,
	// а не в слое представления.
	openMenus map[int64]bool
}

func NewListController[T any](
	name string,
	counterKey domain.CounterKey,
	dashboard port.DashboardStorePort,
	pageSize int,
	fetch ListFetcher[T],
	match func(item T, term string) bool,
	rowID func(item T) int64,
) *ListController[T] {
	return &ListController[T]{
		name:       name,
		counterKey: counterKey,
		dashboard:  dashboard,
		fetch:      fetch,
		match:      match,
		rowID:      rowID,
		pageSize:   pageSize,
		openMenus:  make(map[int64]bool),
	}
}

// LoadPage перезагружает текущую страницу. При успехе список целиком
// замещается содержимым ответа, а счетчик дашборда получает свежее
// значение. При сбое список очищается, счетчик обнуляется, ошибка
// запоминается. Повторов нет.
func (c *ListController[T]) LoadPage(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadPageLocked(ctx)
}

func (c *ListController[T]) loadPageLocked(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"controller": c.name,
		"page":       c.page,
	})
	ucLogger.Debug("Loading list page", nil)

	pageData, err := c.fetch(ctx, c.page, c.pageSize)
	if err != nil {
		ucLogger.Error("Failed to load list page", err, nil)
		c.items = nil
		c.lastErr = err
		c.dashboard.Update(domain.CounterDelta{c.counterKey: 0})
		return err
	}

	c.items = pageData.Content
	c.totalPages = pageData.TotalPages
	c.totalElements = pageData.TotalElements
	c.lastErr = nil
	c.openMenus = make(map[int64]bool)

	counter := pageData.TotalElements
	if c.counterValue != nil {
		counter = c.counterValue(pageData)
	}
	c.dashboard.Update(domain.CounterDelta{c.counterKey: counter})

	ucLogger.Info("List page loaded", port.Fields{
		"items_count":    len(pageData.Content),
		"total_pages":    pageData.TotalPages,
		"total_elements": pageData.TotalElements,
	})
	return nil
}

// GoToPage переходит на указанную страницу. Выход за известные границы
// отсекается на месте, запрос к платформе не уходит.
func (c *ListController[T]) GoToPage(ctx context.Context, page int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if page < 0 {
		return domain.ErrPageOutOfRange
	}
	if c.totalPages > 0 && page >= c.totalPages {
		return domain.ErrPageOutOfRange
	}

	c.page = page
	return c.loadPageLocked(ctx)
}

// Next переходит на следующую страницу, на последней ничего не делает.
func (c *ListController[T]) Next(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page+1 >= c.totalPages {
		return nil
	}
	c.page++
	return c.loadPageLocked(ctx)
}

// Previous переходит на предыдущую страницу, на нулевой ничего не делает.
func (c *ListController[T]) Previous(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page == 0 {
		return nil
	}
	c.page--
	return c.loadPageLocked(ctx)
}

// SetSearch задает строку клиентского поиска. Поиск не пересекает
// границы страницы: совпадение на другой странице не видно, пока та
// не загружена.
func (c *ListController[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
}

// SetCategoryFilter задает фильтр по категории (если список его имеет).
func (c *ListController[T]) SetCategoryFilter(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categoryFilter = category
}

// VisibleItems возвращает строки текущей страницы с примененными
// поисковой строкой и фильтром категории.
func (c *ListController[T]) VisibleItems() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(c.searchTerm))
	// Значение "all" равносильно отсутствию фильтра
	filter := c.categoryFilter
	if strings.EqualFold(filter, "all") {
		filter = ""
	}
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if filter != "" && c.categoryOf != nil && !strings.EqualFold(c.categoryOf(item), filter) {
			continue
		}
		if term != "" && c.match != nil && !c.match(item, term) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Items возвращает строки текущей страницы без фильтрации.
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ListController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *ListController[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

func (c *ListController[T]) TotalElements() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalElements
}

// Err возвращает ошибку последней загрузки или nil.
func (c *ListController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ToggleRowMenu переключает меню действий строки; остальные меню
// закрываются, открытым может быть только одно.
func (c *ListController[T]) ToggleRowMenu(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasOpen := c.openMenus[id]
	c.openMenus = make(map[int64]bool)
	if !wasOpen {
		c.openMenus[id] = true
	}
}

// RowMenuOpen сообщает, открыто ли меню действий строки.
func (c *ListController[T]) RowMenuOpen(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.openMenus[id]
}
