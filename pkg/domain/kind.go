// Package domain holds the transaction record the fee engine works on and
// the whitelists its fields are validated against.
package domain

import (
	"fmt"

	"github.com/snikolow/commission-calculator/pkg/registry"
)

// OperationKind is the type of a financial operation.
type OperationKind string

// Supported operation kinds
const (
	CashIn  OperationKind = "cash_in"
	CashOut OperationKind = "cash_out"
)

// String returns the operation kind as written in input records.
func (k OperationKind) String() string { return string(k) }

// PersonKind is the legal status of the payer.
type PersonKind string

// Supported person kinds
const (
	Natural PersonKind = "natural"
	Legal   PersonKind = "legal"
)

// String returns the person kind as written in input records.
func (k PersonKind) String() string { return string(k) }

// Kinds is the whitelist of operation and person kinds accepted in input.
// A kind can be whitelisted without any fee rule wired for it; such records
// pass validation and fail at rule selection.
type Kinds struct {
	operations *registry.Registry
	persons    *registry.Registry
}

// NewKinds creates a whitelist holding the built-in kinds.
func NewKinds() *Kinds {
	k := &Kinds{
		operations: registry.New(),
		persons:    registry.New(),
	}
	k.AddOperation(CashIn)
	k.AddOperation(CashOut)
	k.AddPerson(Natural)
	k.AddPerson(Legal)
	return k
}

// AddOperation whitelists an operation kind.
func (k *Kinds) AddOperation(op OperationKind) *Kinds {
	k.operations.Register(string(op), registry.Meta{Name: string(op), Active: true})
	return k
}

// AddPerson whitelists a person kind.
func (k *Kinds) AddPerson(person PersonKind) *Kinds {
	k.persons.Register(string(person), registry.Meta{Name: string(person), Active: true})
	return k
}

// IsValidOperation reports whether op is whitelisted.
func (k *Kinds) IsValidOperation(op string) bool {
	return k.operations.IsActive(op)
}

// IsValidPerson reports whether person is whitelisted.
func (k *Kinds) IsValidPerson(person string) bool {
	return k.persons.IsActive(person)
}

// Operation validates op against the whitelist.
func (k *Kinds) Operation(op string) (OperationKind, error) {
	if !k.IsValidOperation(op) {
		return "", fmt.Errorf("%w (%s)", ErrInvalidOperationKind, op)
	}
	return OperationKind(op), nil
}

// Person validates person against the whitelist.
func (k *Kinds) Person(person string) (PersonKind, error) {
	if !k.IsValidPerson(person) {
		return "", fmt.Errorf("%w (%s)", ErrInvalidPersonKind, person)
	}
	return PersonKind(person), nil
}

// Operations lists the whitelisted operation kinds.
func (k *Kinds) Operations() []string {
	return k.operations.ListActive()
}

// Persons lists the whitelisted person kinds.
func (k *Kinds) Persons() []string {
	return k.persons.ListActive()
}
