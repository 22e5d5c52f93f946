package assistant

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	nodex "github.com/tanpawarit/ShopBot/agent/nodes"
)

const (
	nodeValidateQuery  = "validate_query"
	nodeFirstDispatch  = "first_dispatch"
	nodeInvokeFunction = "invoke_function"
	nodeFollowUp       = "follow_up"
	nodeDirectAnswer   = "direct_answer"
)

func (a *Assistant) compileAnswerGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode(nodeValidateQuery,
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ValidateQuery(in, a.systemPrompt)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodeValidateQuery, err)
	}

	if err := graph.AddLambdaNode(nodeFirstDispatch,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.FirstDispatch(ctx, in, a.functionModel)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodeFirstDispatch, err)
	}

	if err := graph.AddLambdaNode(nodeInvokeFunction,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.InvokeFunction(ctx, in, a.gateway)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodeInvokeFunction, err)
	}

	if err := graph.AddLambdaNode(nodeFollowUp,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.FollowUp(ctx, in, a.answerModel)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodeFollowUp, err)
	}

	if err := graph.AddLambdaNode(nodeDirectAnswer,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.DirectAnswer(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodeDirectAnswer, err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			if in == nil {
				return "", nodex.ErrNilState
			}
			if nodex.HasFunctionCall(in) {
				return nodeInvokeFunction, nil
			}
			return nodeDirectAnswer, nil
		},
		map[string]bool{
			nodeInvokeFunction: true,
			nodeDirectAnswer:   true,
		},
	)
	if err := graph.AddBranch(nodeFirstDispatch, branch); err != nil {
		return nil, fmt.Errorf("add branch %s: %w", nodeFirstDispatch, err)
	}

	edges := [][2]string{
		{compose.START, nodeValidateQuery},
		{nodeValidateQuery, nodeFirstDispatch},
		{nodeInvokeFunction, nodeFollowUp},
		{nodeFollowUp, compose.END},
		{nodeDirectAnswer, compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("assistant.answer"))
	if err != nil {
		return nil, fmt.Errorf("compile assistant graph: %w", err)
	}
	return runner, nil
}
