package sale

import (
	"encoding/binary"
	"hash/fnv"
	"time"
)

// Status represents the lifecycle state of a sale.
type Status string

const (
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// StatusAll is the filter sentinel matching every status.
const StatusAll = "all"

// Sale represents a single sales transaction. Records are created once
// at ingestion and never mutated; product and customer names are
// denormalized onto the record the way the panel displays them.
type Sale struct {
	ID           int
	Date         time.Time
	ProductID    int
	ProductName  string
	Category     string
	CustomerID   int
	CustomerName string
	Quantity     int
	UnitPrice    int64
	Total        int64 // Quantity * UnitPrice
	Status       Status
}

// Product is static reference data; the engine never mutates it.
type Product struct {
	ID       int
	Name     string
	Category string
	Price    int64
}

// Customer is static reference data.
type Customer struct {
	ID    int
	Name  string
	Email string
	City  string
}

// Snapshot is the immutable set of sales and reference tables visible
// to one computation cycle. Callers must not modify the slices after
// construction; every derived view is recomputed from a snapshot and
// carries no identity across recomputations.
type Snapshot struct {
	Sales     []Sale
	Products  []Product
	Customers []Customer
}

// Fingerprint returns an FNV-1a hash of the snapshot's record ids and
// totals. Combined with the active filters and period it makes a cheap
// memoization key for callers that cache derived results; the engine
// itself never caches.
func (s *Snapshot) Fingerprint() uint64 {
	h := fnv.New64a()

	var buf [8]byte

	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	write(uint64(len(s.Sales)))

	for _, v := range s.Sales {
		write(uint64(v.ID))
		write(uint64(v.Total))
		write(uint64(v.Date.UnixNano()))
		h.Write([]byte(v.Status))
	}

	write(uint64(len(s.Products)))
	write(uint64(len(s.Customers)))

	return h.Sum64()
}

// ProductByID returns the product with the given id, or false when the
// snapshot has no such reference. Missing references contribute zero to
// aggregates rather than faulting.
func (s *Snapshot) ProductByID(id int) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}

// CustomerByID returns the customer with the given id.
func (s *Snapshot) CustomerByID(id int) (Customer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}

	return Customer{}, false
}

// Categories returns the distinct product categories in reference
// order.
func (s *Snapshot) Categories() []string {
	seen := make(map[string]bool, len(s.Products))

	var out []string

	for _, p := range s.Products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}

	return out
}
