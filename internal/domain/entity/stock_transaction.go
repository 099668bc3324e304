package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIN         = "IN"         // entrada
	TransactionTypeOUT        = "OUT"        // salida
	TransactionTypeADJUSTMENT = "ADJUSTMENT" // ajuste de conteo
	TransactionTypeRETURN     = "RETURN"     // devolución (suma como entrada)
)

// ValidTransactionType verifica que el tipo sea uno de los soportados.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeIN, TransactionTypeOUT, TransactionTypeADJUSTMENT, TransactionTypeRETURN:
		return true
	}
	return false
}

// StockTransaction es el registro inmutable de un movimiento de stock.
// Se crea una sola vez; cada creación dispara exactamente un ajuste de
// CurrentStock en su producto, dentro de la misma transacción de BD.
type StockTransaction struct {
	ID              string
	ProductID       string
	Type            string // IN, OUT, ADJUSTMENT, RETURN
	Quantity        int    // siempre >= 1
	ReferenceNumber string // factura, orden, nota de ajuste, etc.
	Notes           string
	CreatedBy       string // UserID del actor
	CreatedAt       time.Time
}
