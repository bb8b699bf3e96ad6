package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/appwrite/starter-for-vue/pkg/models"
	"github.com/appwrite/starter-for-vue/pkg/printer"
	"github.com/appwrite/starter-for-vue/pkg/query"
)

var (
	documentsOutputFormat string
	documentsQueries      []string
	documentsLimit        int
	documentsCursor       string
)

var DocumentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"docs"},
	Short:   "Read documents from an Appwrite collection",
}

var documentsListCmd = &cobra.Command{
	Use:   "list <database-id> <collection-id>",
	Short: "List documents in a collection",
	Long: `Lists documents in a collection. Raw queries can be passed with --query and
are sent as-is, for example --query '{"method":"equal","attribute":"status","values":["done"]}'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		queries := append([]string{}, documentsQueries...)
		if documentsLimit > 0 {
			queries = append(queries, query.Limit(documentsLimit))
		}
		if documentsCursor != "" {
			queries = append(queries, query.CursorAfter(documentsCursor))
		}

		list, err := apiHandles.Databases.ListDocuments(commandContext(cmd), args[0], args[1], queries)
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}

		if documentsOutputFormat == "json" {
			return printer.PrintJSON(list)
		}

		if len(list.Documents) == 0 {
			printer.PrintInfo("No documents found")
			return nil
		}

		rows := make([][]string, 0, len(list.Documents))
		for _, doc := range list.Documents {
			rows = append(rows, []string{doc.ID, doc.UpdatedAt, summarizeFields(doc)})
		}
		if err := printer.PrintTable([]string{"ID", "Updated", "Fields"}, rows); err != nil {
			return err
		}
		fmt.Printf("%d of %d documents\n", len(list.Documents), list.Total)
		return nil
	},
}

var documentsGetCmd = &cobra.Command{
	Use:   "get <database-id> <collection-id> <document-id>",
	Short: "Show a single document",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := apiHandles.Databases.GetDocument(commandContext(cmd), args[0], args[1], args[2], nil)
		if err != nil {
			return fmt.Errorf("get document: %w", err)
		}
		return printer.PrintJSON(doc)
	},
}

func init() {
	documentsListCmd.Flags().StringArrayVar(&documentsQueries, "query", nil, "Raw query JSON (repeatable)")
	documentsListCmd.Flags().IntVar(&documentsLimit, "limit", 0, "Maximum number of documents to return")
	documentsListCmd.Flags().StringVar(&documentsCursor, "cursor", "", "Return documents after this document ID")
	DocumentsCmd.PersistentFlags().StringVarP(&documentsOutputFormat, "output", "o", "table", "Output format (table, json)")

	DocumentsCmd.AddCommand(documentsListCmd, documentsGetCmd)
}

const summaryWidth = 60

// summarizeFields renders a document's own fields as "k=v" pairs in key order, cut to
// summaryWidth terminal columns.
func summarizeFields(doc models.Document) string {
	keys := make([]string, 0, len(doc.Data))
	for k := range doc.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, doc.Data[k]))
	}
	return runewidth.Truncate(strings.Join(parts, " "), summaryWidth, "...")
}
