package alerts

import (
	"encoding/json"
	"log"

	"github.com/shopspring/decimal"

	"warehouse/internal/models"
)

// DefaultThreshold is the stock level below which an alert is raised.
var DefaultThreshold = decimal.NewFromInt(10)

// Publisher delivers low-stock alert payloads to the message broker.
type Publisher interface {
	PublishLowStockAlert(body []byte) error
}

// LowStockAlert is the payload published when a product's stock drops below
// the threshold.
type LowStockAlert struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
}

// LowStockNotifier watches committed product mutations and raises an alert
// when stock falls below the threshold. Alerts are informational only: a
// publish failure is logged, never propagated to the triggering operation.
type LowStockNotifier struct {
	threshold decimal.Decimal
	publisher Publisher
}

// NewLowStockNotifier creates a notifier. publisher may be nil, in which
// case alerts are only logged.
func NewLowStockNotifier(threshold decimal.Decimal, publisher Publisher) *LowStockNotifier {
	return &LowStockNotifier{
		threshold: threshold,
		publisher: publisher,
	}
}

// Notify is the post-commit hook: it inspects the new product state and
// emits an alert when the stock is low.
func (n *LowStockNotifier) Notify(product *models.Product) {
	if product.Stock.GreaterThanOrEqual(n.threshold) {
		return
	}

	log.Printf("Warning: stock for product '%s' is low (%s)", product.Name, product.Stock)

	if n.publisher == nil {
		return
	}

	alert := LowStockAlert{
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		Stock:     product.Stock,
	}
	body, err := json.Marshal(alert)
	if err != nil {
		log.Printf("Failed to marshal low stock alert for product %s: %v", product.ID, err)
		return
	}
	if err := n.publisher.PublishLowStockAlert(body); err != nil {
		log.Printf("Warning: failed to publish low stock alert for product %s: %v", product.ID, err)
	}
}
