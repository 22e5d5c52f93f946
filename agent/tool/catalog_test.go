package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/tanpawarit/ShopBot/agent/catalog"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
)

func newTestCatalog(t *testing.T, data string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(data))
	if err != nil {
		t.Fatalf("catalog.Parse() error = %v", err)
	}
	return c
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestBuildRegistry(t *testing.T) {
	t.Parallel()

	infos, executor := BuildRegistry(catalog.New())
	if len(infos) != 3 {
		t.Fatalf("expected 3 tool infos, got %d", len(infos))
	}
	wantNames := []string{ToolGetProductDetails, ToolCheckStock, ToolGetProductPrice}
	for i, want := range wantNames {
		if infos[i].Name != want {
			t.Fatalf("infos[%d].Name = %s, want %s", i, infos[i].Name, want)
		}
		if infos[i].Desc == "" {
			t.Fatalf("infos[%d] has empty description", i)
		}
	}
	if executor == nil {
		t.Fatal("executor must not be nil")
	}
}

func TestInfosDeclareParams(t *testing.T) {
	t.Parallel()

	for _, info := range Infos() {
		if info.ParamsOneOf == nil {
			t.Fatalf("%s: params must be declared", info.Name)
		}
	}
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, `[{"Name":"Red Shoes","Price":20,"StockAvailability":true}]`)

	tests := []struct {
		name string
		got  any
		want string
	}{
		{"details red", GetProductDetails(c, "red"), `{"Name":"Red Shoes","Price":20,"StockAvailability":true}`},
		{"stock shoes", CheckStock(c, "shoes"), `[{"Name":"Red Shoes","Price":20,"StockAvailability":true}]`},
		{"stock boots", CheckStock(c, "boots"), `{"message":"Product Not found"}`},
		{"price shoes", GetProductPrice(c, "shoes"), `{"product":"Red Shoes","price":20}`},
	}

	for _, tt := range tests {
		if got := mustJSON(t, tt.got); got != tt.want {
			t.Fatalf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestEmptyCatalogReturnsNotFound(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, `[]`)

	if got := mustJSON(t, GetProductDetails(c, "x")); got != `{"message":"Nothing found"}` {
		t.Fatalf("details: %s", got)
	}
	if got := mustJSON(t, CheckStock(c, "x")); got != `{"message":"Product Not found"}` {
		t.Fatalf("stock: %s", got)
	}
	if got := mustJSON(t, GetProductPrice(c, "Mystery Box")); got != `{"message":"Price information not available for 'Mystery Box'."}` {
		t.Fatalf("price: %s", got)
	}
}

func TestCheckStockNeverReturnsEmptyList(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, `[{"Name":"Red Shoes","Price":20,"StockAvailability":false}]`)

	got := CheckStock(c, "red")
	if _, ok := got.(contractx.NotFound); !ok {
		t.Fatalf("expected NotFound for out-of-stock match, got %T", got)
	}
}

func TestCheckStockElementsAreAvailableMatches(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, `[
		{"Name":"Red Shoes","Price":20,"StockAvailability":true},
		{"Name":"Red Hat","Price":9,"StockAvailability":false},
		{"Name":"RED scarf","Price":12,"StockAvailability":true}
	]`)

	got, ok := CheckStock(c, "Red").([]catalog.Record)
	if !ok {
		t.Fatalf("expected record list")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	for _, r := range got {
		if !r.StockAvailability {
			t.Fatalf("record %q is not available", r.Name)
		}
	}
}

func TestPriceResultHasOnlyProductAndPrice(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, `[{"Name":"Desk Lamp","Price":19.5,"StockAvailability":true,"Color":"black"}]`)

	var keys map[string]any
	if err := json.Unmarshal([]byte(mustJSON(t, GetProductPrice(c, "lamp"))), &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(keys) != 2 || keys["product"] != "Desk Lamp" || keys["price"] != 19.5 {
		t.Fatalf("unexpected price result: %v", keys)
	}
}

func TestLookupsAreIdempotent(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, `[
		{"Name":"Red Shoes","Price":20,"StockAvailability":true},
		{"Name":"Blue Shoes","Price":25,"StockAvailability":true}
	]`)

	for _, fn := range []lookupFunc{GetProductDetails, CheckStock, GetProductPrice} {
		first := mustJSON(t, fn(c, "shoes"))
		second := mustJSON(t, fn(c, "shoes"))
		if first != second {
			t.Fatalf("lookup not idempotent: %s vs %s", first, second)
		}
	}
}

func TestExecutorDispatch(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(newTestCatalog(t, `[{"Name":"Red Shoes","Price":20,"StockAvailability":true}]`))
	out, err := executor(context.Background(), ToolGetProductPrice, map[string]any{
		ArgProductName: "shoes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Tool != ToolGetProductPrice {
		t.Fatalf("unexpected tool: %s", out.Tool)
	}
	result, ok := out.Result.(PriceInfo)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if result.Product != "Red Shoes" || result.Price.String() != "20" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestExecutorUnknownFunction(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(catalog.New())
	_, err := executor(context.Background(), "delete_product", map[string]any{ArgProductName: "x"})
	if !errors.Is(err, contractx.ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestExecutorInvalidArguments(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(catalog.New())

	_, err := executor(context.Background(), ToolCheckStock, map[string]any{})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing arg, got %v", err)
	}

	_, err = executor(context.Background(), ToolCheckStock, map[string]any{ArgProductName: 7})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation for non-string arg, got %v", err)
	}
}

func TestGatewayExecute(t *testing.T) {
	t.Parallel()

	gw := NewGateway(newTestCatalog(t, `[{"Name":"Red Shoes","Price":20,"StockAvailability":true}]`))

	out, err := gw.Execute(context.Background(), contractx.FunctionCall{
		ID:        "call_1",
		Name:      ToolCheckStock,
		Arguments: `{"product_name":"shoes"}`,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := mustJSON(t, out.Result); got != `[{"Name":"Red Shoes","Price":20,"StockAvailability":true}]` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestGatewayRejectsMalformedCalls(t *testing.T) {
	t.Parallel()

	gw := NewGateway(catalog.New())

	_, err := gw.Execute(context.Background(), contractx.FunctionCall{Name: "  ", Arguments: `{}`})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation for empty name, got %v", err)
	}

	_, err = gw.Execute(context.Background(), contractx.FunctionCall{Name: ToolCheckStock, Arguments: `{"product_name":`})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation for bad json, got %v", err)
	}

	_, err = gw.Execute(context.Background(), contractx.FunctionCall{Name: "refund", Arguments: `{"product_name":"x"}`})
	if !errors.Is(err, contractx.ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction, got %v", err)
	}
}
