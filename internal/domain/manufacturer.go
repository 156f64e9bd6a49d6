package domain

// Manufacturer описывает производителя. Название уникально.
type Manufacturer struct {
	ID   int64
	Name string
}
