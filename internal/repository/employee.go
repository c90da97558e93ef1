package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/szoz/northwind-api/internal/entity"
)

// employeeOrderColumns maps the public order keys to real column names.
// Only values from this table are ever spliced into the ORDER BY clause;
// the raw user string never reaches the query text.
var employeeOrderColumns = map[string]string{
	"first_name": "FirstName",
	"last_name":  "LastName",
	"city":       "City",
}

// EmployeeOrderKeys lists the accepted order keys, sorted, for error messages.
func EmployeeOrderKeys() []string {
	keys := make([]string, 0, len(employeeOrderColumns))
	for key := range employeeOrderColumns {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ResolveEmployeeOrder maps a public order key to its column name. An empty
// key falls back to the primary key. Unknown keys report ok=false.
func ResolveEmployeeOrder(key string) (column string, ok bool) {
	if key == "" {
		return "EmployeeID", true
	}
	column, ok = employeeOrderColumns[key]
	return column, ok
}

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db}
}

// List returns employees ordered by the already-resolved column. A negative
// limit means no restriction: the LIMIT clause is omitted instead of leaning
// on driver-specific handling of negative values. Limit and offset are bound
// parameters, never interpolated.
func (r *EmployeeRepository) List(ctx context.Context, orderColumn string, limit, offset int) ([]entity.Employee, error) {
	query := fmt.Sprintf(`SELECT EmployeeID, LastName, FirstName, City FROM Employees ORDER BY %s`, orderColumn)

	var args []interface{}
	switch {
	case limit >= 0:
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, max(offset, 0))
	case offset > 0:
		// sqlite requires a LIMIT clause before OFFSET; -1 disables it.
		query += ` LIMIT -1 OFFSET ?`
		args = append(args, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []entity.Employee
	for rows.Next() {
		var employee entity.Employee
		var lastName, firstName, city []byte
		if err := rows.Scan(&employee.ID, &lastName, &firstName, &city); err != nil {
			return nil, err
		}
		employee.LastName = cleanText(lastName)
		employee.FirstName = cleanText(firstName)
		employee.City = cleanText(city)
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}
