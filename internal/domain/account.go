package domain

// Account represents a chart-of-accounts entry
type Account struct {
	ID    int64
	Code  string // unique hierarchical code, e.g. "1.1.2"
	Name  string
	Type  string // e.g. "activo", "pasivo", "ingreso", "egreso"
	Level int
}
