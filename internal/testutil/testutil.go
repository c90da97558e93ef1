// Package testutil seeds an in-memory sqlite database with a miniature
// Northwind fixture shared by the repository, service and api tests.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

const fixture = `
CREATE TABLE Categories (
	CategoryID   INTEGER PRIMARY KEY,
	CategoryName TEXT NOT NULL
);
CREATE TABLE Suppliers (
	SupplierID   INTEGER PRIMARY KEY,
	CompanyName  TEXT NOT NULL,
	ContactName  TEXT,
	ContactTitle TEXT,
	Address      TEXT,
	City         TEXT,
	Region       TEXT,
	PostalCode   TEXT,
	Country      TEXT,
	Phone        TEXT,
	Fax          TEXT,
	HomePage     TEXT
);
CREATE TABLE Products (
	ProductID   INTEGER PRIMARY KEY,
	ProductName TEXT NOT NULL,
	SupplierID  INTEGER,
	CategoryID  INTEGER
);
CREATE TABLE Customers (
	CustomerID  TEXT PRIMARY KEY,
	CompanyName TEXT NOT NULL,
	Address     TEXT,
	PostalCode  TEXT,
	City        TEXT,
	Country     TEXT
);
CREATE TABLE Employees (
	EmployeeID INTEGER PRIMARY KEY,
	LastName   TEXT,
	FirstName  TEXT,
	City       TEXT
);
CREATE TABLE Orders (
	OrderID    INTEGER PRIMARY KEY,
	CustomerID TEXT
);
CREATE TABLE "Order Details" (
	OrderID   INTEGER,
	ProductID INTEGER,
	UnitPrice REAL,
	Quantity  INTEGER,
	Discount  REAL
);

INSERT INTO Categories VALUES
	(1, 'Beverages'),
	(2, 'Condiments');

INSERT INTO Suppliers VALUES
	(1, 'Exotic Liquids', 'Charlotte Cooper', 'Purchasing Manager',
	 '49 Gilbert St.', 'London', NULL, 'EC1 4SD', 'UK', '(171) 555-2222', NULL, NULL);

INSERT INTO Products VALUES
	(1, 'Chai', 1, 1),
	(2, 'Chang', 1, 1),
	(10, 'Ikura', 4, NULL);

INSERT INTO Customers VALUES
	('ALFKI', 'Alfreds Futterkiste', 'Obere Str. 57', '12209', 'Berlin', 'Germany'),
	('QUICK', 'QUICK-Stop', 'Taucherstraße 10', '01307', 'Cunewalde', 'Germany'),
	('BONAP', 'Bon app', '12, rue des Bouchers', NULL, 'Marseille', 'France');

INSERT INTO Employees VALUES
	(1, 'Davolio', 'Nancy', 'Seattle'),
	(2, 'Fuller', 'Andrew', 'Tacoma'),
	(3, 'Leverling', 'Janet', 'Kirkland');

INSERT INTO Orders VALUES
	(10273, 'QUICK'),
	(10274, 'ALFKI');

INSERT INTO "Order Details" VALUES
	(10273, 10, 23.56, 24, 0.0),
	(10274, 1, 18.0, 20, 0.05);
`

// OpenFixture returns a seeded in-memory database. The pool is pinned to a
// single connection: each sqlite :memory: connection is its own database.
func OpenFixture(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(fixture)
	require.NoError(t, err)

	return db
}
