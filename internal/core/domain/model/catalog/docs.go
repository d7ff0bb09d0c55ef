// Package catalog holds the Product entity offered to customers.
package catalog
