package dto

// Table hoja de cálculo ya leída: primera fila como encabezados, el resto como datos.
// Las filas pueden tener menos celdas que encabezados.
type Table struct {
	Headers []string
	Rows    [][]string
}
