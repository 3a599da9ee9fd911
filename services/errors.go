package services

import "errors"

var (
	ErrNoCart            = errors.New("no hay carrito")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrItemNotFound      = errors.New("item no encontrado")
	ErrOrderNotFound     = errors.New("pedido no encontrado")
	ErrInvalidStatus     = errors.New("estado no válido")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrCancelNotAllowed  = errors.New("el pedido ya no se puede cancelar")
	ErrFoodNotFound      = errors.New("alimento no encontrado")
	ErrInvalidPhone      = errors.New("número inválido")

	ErrNotifierUnavailable = errors.New("notificaciones no configuradas")
)
