package tool

import (
	"encoding/json"
	"fmt"

	"github.com/tanpawarit/ShopBot/agent/catalog"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
)

const (
	msgDetailsNotFound = "Nothing found"
	msgStockNotFound   = "Product Not found"
)

type PriceInfo struct {
	Product string      `json:"product"`
	Price   json.Number `json:"price"`
}

// GetProductDetails returns the first matching record in full.
func GetProductDetails(c *catalog.Catalog, name string) any {
	if r, ok := c.First(name); ok {
		return r
	}
	return contractx.NotFound{Message: msgDetailsNotFound}
}

// CheckStock returns every available match. Unlike the other lookups it does
// not stop at the first hit.
func CheckStock(c *catalog.Catalog, name string) any {
	available := c.InStock(name)
	if len(available) == 0 {
		return contractx.NotFound{Message: msgStockNotFound}
	}
	return available
}

func GetProductPrice(c *catalog.Catalog, name string) any {
	if r, ok := c.First(name); ok {
		return PriceInfo{Product: r.Name, Price: r.Price}
	}
	return contractx.NotFound{
		Message: fmt.Sprintf("Price information not available for '%s'.", name),
	}
}
