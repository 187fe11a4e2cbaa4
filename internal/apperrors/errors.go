package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPeriodClosed is raised by the ledger store when the entry date falls in a
// closed accounting period. The generator surfaces it unchanged.
var ErrPeriodClosed = errors.New("accounting period is closed")

// ErrorKind classifies generation failures for the wire contract. All of these
// indicate a configuration or input problem that requires a human fix; none is
// retriable.
type ErrorKind string

const (
	KindEventNotFound        ErrorKind = "EventNotFound"
	KindNoRulesConfigured    ErrorKind = "NoRulesConfigured"
	KindMissingAmountField   ErrorKind = "MissingAmountField"
	KindUnmappedAccountType  ErrorKind = "UnmappedAccountType"
	KindUnbalancedEntry      ErrorKind = "UnbalancedEntry"
	KindInvalidPayrollTotals ErrorKind = "InvalidPayrollTotals"
)

// GenerationError is a structured failure from the entry generator. Detail
// fields are populated depending on Kind so the caller can point directly at
// the fix (the unmapped type, the missing amount field, the unbalanced totals).
type GenerationError struct {
	Kind       ErrorKind
	Message    string
	TipoCuenta string
	TipoMonto  string
	TotalDebe  decimal.Decimal
	TotalHaber decimal.Decimal
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewEventNotFound reports an unknown or inactive event tipo.
func NewEventNotFound(tipo string) *GenerationError {
	return &GenerationError{
		Kind:    KindEventNotFound,
		Message: fmt.Sprintf("evento %q no existe o está inactivo", tipo),
	}
}

// NewNoRulesConfigured reports an event with no active rules.
func NewNoRulesConfigured(tipo string) *GenerationError {
	return &GenerationError{
		Kind:    KindNoRulesConfigured,
		Message: fmt.Sprintf("el evento %q no tiene reglas configuradas", tipo),
	}
}

// NewMissingAmountField reports a rule whose amount field is absent from datos.
func NewMissingAmountField(tipoMonto string) *GenerationError {
	return &GenerationError{
		Kind:      KindMissingAmountField,
		Message:   fmt.Sprintf("el campo de monto %q no está presente en los datos", tipoMonto),
		TipoMonto: tipoMonto,
	}
}

// NewUnmappedAccountType reports an account type with no active mapping.
func NewUnmappedAccountType(tipoCuenta string) *GenerationError {
	return &GenerationError{
		Kind:       KindUnmappedAccountType,
		Message:    fmt.Sprintf("el tipo de cuenta %q no tiene mapeo activo", tipoCuenta),
		TipoCuenta: tipoCuenta,
	}
}

// NewUnbalancedEntry reports a PERSIST attempt on an entry that does not balance.
func NewUnbalancedEntry(totalDebe, totalHaber decimal.Decimal) *GenerationError {
	return &GenerationError{
		Kind:       KindUnbalancedEntry,
		Message:    fmt.Sprintf("el asiento no cuadra: debe %s, haber %s", totalDebe.String(), totalHaber.String()),
		TotalDebe:  totalDebe,
		TotalHaber: totalHaber,
	}
}

// NewInvalidPayrollTotals reports a payroll provision whose components do not
// sum to the declared total expense.
func NewInvalidPayrollTotals(declared, computed decimal.Decimal) *GenerationError {
	return &GenerationError{
		Kind:       KindInvalidPayrollTotals,
		Message:    fmt.Sprintf("total_gasto %s no coincide con la suma de componentes %s", declared.String(), computed.String()),
		TotalDebe:  declared,
		TotalHaber: computed,
	}
}

// AsGenerationError unwraps err into a *GenerationError if it is one.
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}
