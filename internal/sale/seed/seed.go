// Package seed builds deterministic demo snapshots so the panel can
// run without a database. The generator takes an explicit seed; the
// same seed always yields the same snapshot, which keeps every derived
// aggregate reproducible in tests and demos.
package seed

import (
	"math/rand"
	"sort"
	"time"

	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

var products = []sale.Product{
	{ID: 1, Name: "Laptop HP", Category: "Electrónica", Price: 45000},
	{ID: 2, Name: "Mouse Logitech", Category: "Accesorios", Price: 2500},
	{ID: 3, Name: "Teclado Mecánico", Category: "Accesorios", Price: 8000},
	{ID: 4, Name: "Monitor Samsung 24\"", Category: "Electrónica", Price: 35000},
	{ID: 5, Name: "Auriculares Sony", Category: "Audio", Price: 12000},
	{ID: 6, Name: "Webcam Logitech", Category: "Accesorios", Price: 15000},
	{ID: 7, Name: "SSD 1TB", Category: "Almacenamiento", Price: 18000},
	{ID: 8, Name: "RAM 16GB", Category: "Componentes", Price: 22000},
	{ID: 9, Name: "Smartphone Samsung", Category: "Telefonía", Price: 95000},
	{ID: 10, Name: "Tablet iPad", Category: "Electrónica", Price: 125000},
	{ID: 11, Name: "Impresora HP", Category: "Oficina", Price: 28000},
	{ID: 12, Name: "Router TP-Link", Category: "Redes", Price: 6500},
}

var customers = []sale.Customer{
	{ID: 1, Name: "Juan Pérez", Email: "juan@email.com", City: "Buenos Aires"},
	{ID: 2, Name: "María García", Email: "maria@email.com", City: "Córdoba"},
	{ID: 3, Name: "Carlos López", Email: "carlos@email.com", City: "Rosario"},
	{ID: 4, Name: "Ana Martínez", Email: "ana@email.com", City: "Mendoza"},
	{ID: 5, Name: "Pedro Rodríguez", Email: "pedro@email.com", City: "La Plata"},
	{ID: 6, Name: "Laura Fernández", Email: "laura@email.com", City: "Tucumán"},
	{ID: 7, Name: "Diego Sánchez", Email: "diego@email.com", City: "Salta"},
	{ID: 8, Name: "Sofía Gómez", Email: "sofia@email.com", City: "Mar del Plata"},
	{ID: 9, Name: "Martín Díaz", Email: "martin@email.com", City: "San Juan"},
	{ID: 10, Name: "Valentina Ruiz", Email: "valentina@email.com", City: "Neuquén"},
}

var statuses = []sale.Status{sale.StatusCompleted, sale.StatusPending, sale.StatusCancelled}

// Snapshot generates count random sales between start and now,
// date-descending like the panel's default view.
func Snapshot(seedVal int64, count int, now time.Time) *sale.Snapshot {
	rng := rand.New(rand.NewSource(seedVal))
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	// At year rollover the span collapses to zero; Int63n needs n > 0.
	span := int64(now.Sub(start))
	if span < 1 {
		span = 1
	}

	sales := make([]sale.Sale, count)

	for i := range sales {
		p := products[rng.Intn(len(products))]
		c := customers[rng.Intn(len(customers))]
		quantity := rng.Intn(5) + 1
		date := start.Add(time.Duration(rng.Int63n(span)))

		sales[i] = sale.Sale{
			ID:           i + 1,
			Date:         date,
			ProductID:    p.ID,
			ProductName:  p.Name,
			Category:     p.Category,
			CustomerID:   c.ID,
			CustomerName: c.Name,
			Quantity:     quantity,
			UnitPrice:    p.Price,
			Total:        p.Price * int64(quantity),
			Status:       statuses[rng.Intn(len(statuses))],
		}
	}

	// Newest first; ids keep generation order so ties stay stable.
	sort.SliceStable(sales, func(i, j int) bool { return sales[i].Date.After(sales[j].Date) })

	return &sale.Snapshot{Sales: sales, Products: products, Customers: customers}
}
