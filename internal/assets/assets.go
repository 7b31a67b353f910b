// Package assets хранит встраиваемые статические файлы консоли.
package assets

import _ "embed"

// DefaultPropertyImage подставляется при отправке объекта без фотографий,
// чтобы карточка на платформе не оставалась без изображения.
//
//go:embed default_property.png
var DefaultPropertyImage []byte
