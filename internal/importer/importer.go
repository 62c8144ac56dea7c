// Package importer loads a sales snapshot from CSV exports: one file
// per table (sales, products, customers). Reference tables are parsed
// first so that sale rows can be denormalized against them; a sale
// pointing at a missing reference keeps empty display fields and
// contributes zero to lookups, per the silent-data policy.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	enc "github.com/pablolacamera1/ventaspanel/internal/encoding"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

// Default file names inside a snapshot directory.
const (
	SalesFile     = "sales.csv"
	ProductsFile  = "products.csv"
	CustomersFile = "customers.csv"
)

// LoadDir reads the three snapshot files from dir and assembles an
// immutable snapshot.
func LoadDir(dir string) (*sale.Snapshot, error) {
	products, err := loadFile(filepath.Join(dir, ProductsFile), ParseProducts)
	if err != nil {
		return nil, err
	}

	customers, err := loadFile(filepath.Join(dir, CustomersFile), ParseCustomers)
	if err != nil {
		return nil, err
	}

	snap := &sale.Snapshot{Products: products, Customers: customers}

	sales, err := loadFile(filepath.Join(dir, SalesFile), func(r io.Reader) ([]sale.Sale, error) {
		return ParseSales(r, snap)
	})
	if err != nil {
		return nil, err
	}

	snap.Sales = sales

	return snap, nil
}

func loadFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	out, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return out, nil
}

// ParseProducts reads a products CSV with columns
// id,name,category,price.
func ParseProducts(r io.Reader) ([]sale.Product, error) {
	rows, err := readRows(r, []string{"id", "name", "category", "price"})
	if err != nil {
		return nil, err
	}

	products := make([]sale.Product, 0, len(rows))

	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid id %q", i+2, row[0])
		}

		price, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", i+2, row[3])
		}

		products = append(products, sale.Product{
			ID:       id,
			Name:     row[1],
			Category: row[2],
			Price:    price,
		})
	}

	return products, nil
}

// ParseCustomers reads a customers CSV with columns
// id,name,email,city.
func ParseCustomers(r io.Reader) ([]sale.Customer, error) {
	rows, err := readRows(r, []string{"id", "name", "email", "city"})
	if err != nil {
		return nil, err
	}

	customers := make([]sale.Customer, 0, len(rows))

	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid id %q", i+2, row[0])
		}

		customers = append(customers, sale.Customer{
			ID:    id,
			Name:  row[1],
			Email: row[2],
			City:  row[3],
		})
	}

	return customers, nil
}

// ParseSales reads a sales CSV with columns
// id,date,product_id,customer_id,quantity,unit_price,status and
// denormalizes display fields against the snapshot's reference tables.
// The total is derived as quantity * unit_price.
func ParseSales(r io.Reader, refs *sale.Snapshot) ([]sale.Sale, error) {
	rows, err := readRows(r, []string{"id", "date", "product_id", "customer_id", "quantity", "unit_price", "status"})
	if err != nil {
		return nil, err
	}

	sales := make([]sale.Sale, 0, len(rows))

	for i, row := range rows {
		line := i + 2

		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid id %q", line, row[0])
		}

		date, err := parseDate(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		productID, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid product_id %q", line, row[2])
		}

		customerID, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid customer_id %q", line, row[3])
		}

		quantity, err := strconv.Atoi(row[4])
		if err != nil || quantity <= 0 {
			return nil, fmt.Errorf("row %d: invalid quantity %q", line, row[4])
		}

		unitPrice, err := strconv.ParseInt(row[5], 10, 64)
		if err != nil || unitPrice < 0 {
			return nil, fmt.Errorf("row %d: invalid unit_price %q", line, row[5])
		}

		status := sale.Status(row[6])

		switch status {
		case sale.StatusCompleted, sale.StatusPending, sale.StatusCancelled:
		default:
			return nil, fmt.Errorf("row %d: unknown status %q", line, row[6])
		}

		v := sale.Sale{
			ID:         id,
			Date:       date,
			ProductID:  productID,
			CustomerID: customerID,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			Total:      int64(quantity) * unitPrice,
			Status:     status,
		}

		if p, ok := refs.ProductByID(productID); ok {
			v.ProductName = p.Name
			v.Category = p.Category
		}

		if c, ok := refs.CustomerByID(customerID); ok {
			v.CustomerName = c.Name
		}

		sales = append(sales, v)
	}

	return sales, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// readRows decodes the CSV behind an encoding-normalizing reader,
// validates the header and returns the data rows.
func readRows(r io.Reader, header []string) ([][]string, error) {
	utf8r, err := enc.NormalizeUTF8(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	for i, name := range header {
		if i >= len(rows[0]) || !strings.EqualFold(strings.TrimSpace(rows[0][i]), name) {
			return nil, fmt.Errorf("unexpected header: want %v", header)
		}
	}

	return rows[1:], nil
}
