package tool

import (
	"github.com/cloudwego/eino/schema"
)

const (
	ToolGetProductDetails = "get_product_details"
	ToolCheckStock        = "check_stock"
	ToolGetProductPrice   = "get_product_price"

	ArgProductName = "product_name"
)

func productNameParams() *schema.ParamsOneOf {
	return schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
		ArgProductName: {Type: schema.String, Desc: "The name of the product.", Required: true},
	})
}

// Infos advertises the callable catalog functions to the model.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name:        ToolGetProductDetails,
			Desc:        "Retrieve product details by product name.",
			ParamsOneOf: productNameParams(),
		},
		{
			Name:        ToolCheckStock,
			Desc:        "Check if a product is in stock by product name.",
			ParamsOneOf: productNameParams(),
		},
		{
			Name:        ToolGetProductPrice,
			Desc:        "Retrieve the price of a product by product name.",
			ParamsOneOf: productNameParams(),
		},
	}
}
