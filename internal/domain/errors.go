package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrConnectivity   = errors.New("almacén de datos no disponible")
	ErrSchemaMismatch = errors.New("las columnas del archivo no coinciden con el formato esperado")

	// Fallos del flujo de cotización: se envuelven junto con la causa original.
	ErrHeaderWriteFailed = errors.New("no se pudo guardar la cabecera de la cotización")
	ErrItemsWriteFailed  = errors.New("no se pudieron guardar los ítems de la cotización")
)
