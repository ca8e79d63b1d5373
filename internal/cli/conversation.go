package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/wire"
)

// ConversationCmd returns the conversation command
func ConversationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversation",
		Short: "Manage conversation transcripts",
		Long: `Record and browse conversation transcripts. The store only keeps
the ledger; it never talks to a model provider.`,
	}

	cmd.AddCommand(conversationCreateCmd())
	cmd.AddCommand(conversationListCmd())
	cmd.AddCommand(conversationShowCmd())
	cmd.AddCommand(conversationAppendCmd())
	cmd.AddCommand(conversationDeleteCmd())

	return cmd
}

func conversationCreateCmd() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Open a new conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			conversation, err := wire.ConversationService().CreateConversation(ctx, primary.CreateConversationRequest{
				ProjectID: projectID,
				Title:     args[0],
			})
			if err != nil {
				return fmt.Errorf("failed to create conversation: %w", err)
			}

			fmt.Printf("✓ Created conversation %s: %s\n", conversation.ID, conversation.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id (required)")
	cmd.MarkFlagRequired("project")

	return cmd
}

func conversationListCmd() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's conversations, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			conversations, err := wire.ConversationService().ListConversations(ctx, projectID)
			if err != nil {
				return fmt.Errorf("failed to list conversations: %w", err)
			}

			if len(conversations) == 0 {
				fmt.Println("No conversations found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tMESSAGES\tTOKENS")
			fmt.Fprintln(w, "--\t-----\t--------\t------")
			for _, c := range conversations {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", c.ID, c.Title, c.MessageCount, c.TokenCount)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id (required)")
	cmd.MarkFlagRequired("project")

	return cmd
}

func conversationShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [conversation-id]",
		Short: "Show a conversation's transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			conversation, err := wire.ConversationService().GetConversation(ctx, args[0])
			if err != nil {
				return fmt.Errorf("conversation not found: %w", err)
			}

			fmt.Printf("Conversation: %s\n", conversation.ID)
			fmt.Printf("Title: %s\n", conversation.Title)
			fmt.Printf("Messages: %d (%d tokens)\n", conversation.MessageCount, conversation.TokenCount)

			messages, err := wire.ConversationService().ListMessages(ctx, conversation.ID)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}
			for _, m := range messages {
				fmt.Printf("\n[%s] %s\n%s\n", m.Role, m.CreatedAt, m.Content)
			}

			return nil
		},
	}
}

func conversationAppendCmd() *cobra.Command {
	var role, content string
	var tokenCount int

	cmd := &cobra.Command{
		Use:   "append [conversation-id]",
		Short: "Append a message to a conversation",
		Long: `Append a message to a conversation's transcript. The role must be
user, assistant, or system; the token count is whatever the caller
measured for the message.

Examples:
  pmide conversation append <id> --role user --content "Draft the PRD"
  pmide conversation append <id> --role assistant --content "..." --tokens 420`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			message, err := wire.ConversationService().AppendMessage(ctx, primary.AppendMessageRequest{
				ConversationID: args[0],
				Role:           role,
				Content:        content,
				TokenCount:     tokenCount,
			})
			if err != nil {
				return fmt.Errorf("failed to append message: %w", err)
			}

			fmt.Printf("✓ Appended %s message %s\n", message.Role, message.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "Message role: user, assistant, or system (required)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Message content (required)")
	cmd.Flags().IntVar(&tokenCount, "tokens", 0, "Token count for this message")
	cmd.MarkFlagRequired("role")
	cmd.MarkFlagRequired("content")

	return cmd
}

func conversationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [conversation-id]",
		Short: "Delete a conversation and its messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ConversationService().DeleteConversation(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Conversation %s deleted\n", args[0])
			return nil
		},
	}
}
