// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Applicant is the predicate function for applicant builders.
type Applicant func(*sql.Selector)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// Label is the predicate function for label builders.
type Label func(*sql.Selector)
