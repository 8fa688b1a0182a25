// Package agent answers free-form requests by letting the model pick among a
// small set of tools, in the zero-shot ReAct style.
package agent

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"feedbackdesk/internal/llm"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultMaxIterations = 5

var ErrMaxIterations = errors.New("agent stopped after reaching the iteration limit")

var actionRe = regexp.MustCompile(`(?s)Action\s*\d*\s*:(.*?)\n\s*Action\s*\d*\s*Input\s*\d*\s*:\s*(.*)`)

const finalAnswerMarker = "Final Answer:"

type Tool struct {
	Name        string
	Description string
	Run         func(ctx context.Context, input string) (string, error)
}

type Config struct {
	MaxIterations int
	Verbose       bool
	Logger        *zap.SugaredLogger
}

type Agent struct {
	llm           llm.Client
	tools         []Tool
	maxIterations int
	verbose       bool
	logger        *zap.SugaredLogger
}

func New(client llm.Client, tools []Tool, cfg Config) *Agent {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return &Agent{
		llm:           client,
		tools:         tools,
		maxIterations: cfg.MaxIterations,
		verbose:       cfg.Verbose,
		logger:        cfg.Logger,
	}
}

func (a *Agent) Tools() []Tool { return a.tools }

// Run loops model turn -> tool call -> observation until the model gives a
// final answer.
func (a *Agent) Run(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("agent: empty question")
	}

	runID := uuid.NewString()
	var scratchpad strings.Builder

	for i := 0; i < a.maxIterations; i++ {
		out, err := a.llm.Complete(ctx, a.prompt(question, scratchpad.String()))
		if err != nil {
			return "", fmt.Errorf("agent step %d: %w", i+1, err)
		}
		out = cutObservation(out)

		if idx := strings.Index(out, finalAnswerMarker); idx >= 0 {
			answer := strings.TrimSpace(out[idx+len(finalAnswerMarker):])
			a.trace(runID, i, "final answer", answer)
			return answer, nil
		}

		var observation string
		name, input, ok := parseAction(out)
		switch {
		case !ok:
			observation = "Invalid Format: Missing 'Action:' or 'Action Input:' after 'Thought:'"
		default:
			observation = a.call(ctx, name, input)
			a.trace(runID, i, name, input)
		}

		scratchpad.WriteString(" ")
		scratchpad.WriteString(strings.TrimSpace(out))
		scratchpad.WriteString("\nObservation: ")
		scratchpad.WriteString(observation)
		scratchpad.WriteString("\nThought:")
	}

	return "", ErrMaxIterations
}

func (a *Agent) call(ctx context.Context, name, input string) string {
	for _, t := range a.tools {
		if strings.EqualFold(t.Name, name) {
			out, err := t.Run(ctx, input)
			if err != nil {
				return "Error: " + err.Error()
			}
			return out
		}
	}
	return fmt.Sprintf("%s is not a valid tool, try one of [%s].", name, strings.Join(a.toolNames(), ", "))
}

func (a *Agent) trace(runID string, step int, action, input string) {
	if !a.verbose {
		return
	}
	a.logger.Infow("agent step", "run", runID, "step", step+1, "action", action, "input", input)
}

func (a *Agent) toolNames() []string {
	names := make([]string, len(a.tools))
	for i, t := range a.tools {
		names[i] = t.Name
	}
	return names
}

func (a *Agent) prompt(question, scratchpad string) string {
	var b strings.Builder
	b.WriteString("Answer the following questions as best you can. You have access to the following tools:\n\n")
	for _, t := range a.tools {
		fmt.Fprintf(&b, "%s: %s\n", t.Name, t.Description)
	}
	b.WriteString("\nUse the following format:\n\n")
	b.WriteString("Question: the input question you must answer\n")
	b.WriteString("Thought: you should always think about what to do\n")
	fmt.Fprintf(&b, "Action: the action to take, should be one of [%s]\n", strings.Join(a.toolNames(), ", "))
	b.WriteString("Action Input: the input to the action\n")
	b.WriteString("Observation: the result of the action\n")
	b.WriteString("... (this Thought/Action/Action Input/Observation can repeat N times)\n")
	b.WriteString("Thought: I now know the final answer\n")
	b.WriteString("Final Answer: the final answer to the original input question\n\n")
	b.WriteString("Begin!\n\n")
	fmt.Fprintf(&b, "Question: %s\nThought:%s", question, scratchpad)
	return b.String()
}

// cutObservation drops anything the model invented after its action.
func cutObservation(out string) string {
	if idx := strings.Index(out, "\nObservation:"); idx >= 0 {
		return out[:idx]
	}
	return out
}

func parseAction(out string) (string, string, bool) {
	m := actionRe.FindStringSubmatch(out)
	if m == nil {
		return "", "", false
	}
	name := strings.TrimSpace(m[1])
	input := strings.TrimSpace(m[2])
	input = strings.Trim(input, `"'`)
	if name == "" {
		return "", "", false
	}
	return name, input, true
}
