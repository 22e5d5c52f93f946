package assistantnode

import (
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
)

type GraphInput struct {
	Query string
}

type GraphOutput struct {
	Reply string
	// Function names the catalog function that was run, empty for direct answers.
	Function string
}

// GraphState lives for a single query and is dropped once the reply is built.
type GraphState struct {
	Query    string
	Messages []*schema.Message

	FirstReply *schema.Message
	Call       *contractx.FunctionCall
	Result     contractx.ToolResult
}
