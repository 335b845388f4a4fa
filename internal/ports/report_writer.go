package ports

// ReportWriter persiste el reporte final del job.
type ReportWriter interface {
	// Write serializa el reporte y lo escribe en el path destino,
	// sobreescribiendo cualquier archivo previo. Devuelve el documento
	// serializado para que el caller pueda imprimirlo por stdout.
	Write(path string, report any) ([]byte, error)
}
