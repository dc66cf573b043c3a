package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docshub/docshub-cli/internal/core/domain"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage documents",
	Long:  `List, view, or create documents on the Docs Hub backend.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Long:  `Lists document summaries, optionally filtered by text query and category.`,
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

var docsGetCmd = &cobra.Command{
	Use:   "get [slug]",
	Short: "Show a document",
	Long:  `Fetches a document by slug and prints its content verbatim.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsGet,
}

var docsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a document",
	Long: `Creates a new document from flags. The backend assigns the slug.

If --cover names a local file it is uploaded first and the returned
reference is attached to the document.`,
	Args: cobra.NoArgs,
	RunE: runDocsCreate,
}

// Flags for list.
var (
	listQuery    string
	listCategory string
)

// Flags for create.
var (
	createTitle       string
	createCategory    string
	createTags        string
	createContent     string
	createContentFile string
	createCover       string
)

func init() {
	docsListCmd.Flags().StringVarP(&listQuery, "query", "q", "", "free-text search query")
	docsListCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category (linux, windows, web)")

	docsCreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "document title")
	docsCreateCmd.Flags().StringVarP(&createCategory, "category", "c", string(domain.CategoryLinux), "document category")
	docsCreateCmd.Flags().StringVar(&createTags, "tags", "", "comma-separated tags")
	docsCreateCmd.Flags().StringVar(&createContent, "content", "", "document body text")
	docsCreateCmd.Flags().StringVar(&createContentFile, "content-file", "", "read the document body from a file")
	docsCreateCmd.Flags().StringVar(&createCover, "cover", "", "path to a cover image to upload")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsGetCmd)
	docsCmd.AddCommand(docsCreateCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	filter := domain.Filter{
		Query:    listQuery,
		Category: listCategory,
	}

	docs, err := documentService.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for i := range docs {
		badge := docs[i].Category.Badge()
		cmd.Printf("  %s\n", docs[i].Slug)
		cmd.Printf("    Title:    %s\n", docs[i].Title)
		cmd.Printf("    Category: %s %s\n", badge.Icon, badge.Label)
		if tags := docs[i].CardTags(); len(tags) > 0 {
			cmd.Printf("    Tags:     %s\n", strings.Join(tags, ", "))
		}
		if docs[i].CoverImage != "" {
			cmd.Printf("    Cover:    yes\n")
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocsGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	slug := args[0]
	ctx := context.Background()

	doc, err := documentService.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("document not found: %s", slug)
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	badge := doc.Category.Badge()
	cmd.Printf("Document: %s\n\n", doc.Slug)
	cmd.Printf("  Title:    %s\n", doc.Title)
	cmd.Printf("  Category: %s %s\n", badge.Icon, badge.Label)
	if len(doc.Tags) > 0 {
		cmd.Printf("  Tags:     %s\n", strings.Join(doc.Tags, ", "))
	}
	if doc.CoverImage != "" {
		cmd.Printf("  Cover:    %s\n", doc.CoverImage)
	}
	cmd.Println()
	cmd.Println(doc.Content)

	return nil
}

func runDocsCreate(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	content := createContent
	if createContentFile != "" {
		data, err := os.ReadFile(createContentFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		content = string(data)
	}

	draft := domain.Draft{
		Title:     createTitle,
		Category:  domain.Category(createCategory),
		TagsInput: createTags,
		Content:   content,
	}

	if createCover != "" {
		if uploadService == nil {
			return errors.New("upload service not configured")
		}
		ref, err := uploadService.Upload(ctx, createCover)
		if err != nil {
			return fmt.Errorf("failed to upload cover: %w", err)
		}
		draft.CoverImage = ref
		cmd.Println("Cover uploaded.")
	}

	doc, err := documentService.Create(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	cmd.Printf("Created document %s\n", doc.Slug)
	cmd.Printf("  Title:    %s\n", doc.Title)
	cmd.Printf("  Category: %s\n", doc.Category)
	return nil
}
