// Package chat runs an interactive QA session against the configured chat
// completion backend.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spacesedan/sentiment-miner/internal/clients"
)

const systemPrompt = "Answer the question based on the conversation so far. Be concise."

// Run reads questions line by line and answers them with the full
// conversation history as context. "finish", "exit" or "quit" ends the
// session; so does context cancellation or EOF.
func Run(ctx context.Context, in io.Reader, out io.Writer) error {
	client, err := clients.GetOpenAIClient()
	if err != nil {
		return err
	}

	history := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}

	fmt.Fprintln(out, "--- Interactive Chat ---")
	fmt.Fprintln(out, "Type 'finish' or 'exit' to end the conversation.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(question) {
		case "finish", "exit", "quit":
			fmt.Fprintln(out, "\n--- Conversation Ended ---")
			return nil
		case "":
			continue
		}

		history = append(history, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: question,
		})

		resp, err := client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    client.Model,
			Messages: history,
		})
		if err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				break
			}
			slog.Warn("[Chat] Completion failed", slog.String("error", err.Error()))
			// Drop the unanswered question so history stays consistent.
			history = history[:len(history)-1]
			continue
		}
		if len(resp.Choices) == 0 {
			slog.Warn("[Chat] Model returned no choices")
			history = history[:len(history)-1]
			continue
		}

		answer := resp.Choices[0].Message.Content
		history = append(history, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: answer,
		})

		fmt.Fprintf(out, "Assistant: %s\n", answer)
	}

	fmt.Fprintln(out, "\n--- Conversation Ended ---")
	return scanner.Err()
}
