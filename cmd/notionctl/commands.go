package main

import (
	"fmt"

	"github.com/prefeitura-rio/app-notion-site/internal/render"
	"github.com/spf13/cobra"
)

func newNavigationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "navigation",
		Short: "Lista as categorias ativas da navegação",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.services.Navigation.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), items)
		},
	}
}

func newGalleryCmd(a *app) *cobra.Command {
	var category, databaseID string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Lista os itens da galeria na ordem de exibição",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseID == "" {
				databaseID = a.services.Content.DatabaseID()
			}
			items, err := a.services.Content.QuerySource(cmd.Context(), databaseID, category)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "ID da categoria para filtrar")
	cmd.Flags().StringVar(&databaseID, "database", "", "database de conteúdo (padrão: NOTION_DATABASE_ID)")
	return cmd
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [segment]",
		Short: "Mostra como o site resolve um segmento de URL (sem argumento: a home)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				decision, err := a.services.Router.ResolveHome(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), decision)
			}
			decision, err := a.services.Router.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), decision)
		},
	}
}

func newPageCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "page <page-id>",
		Short: "Renderiza uma página do Notion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, blocks, err := a.services.Pages.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "markdown":
				_, err = fmt.Fprintln(out, render.BlocksToMarkdown(blocks))
			case "html":
				_, err = fmt.Fprintln(out, render.BlocksToHTML(blocks))
			case "json":
				err = writeJSON(out, map[string]any{"page": page, "blocks": blocks})
			default:
				err = fmt.Errorf("formato desconhecido %q (use markdown, html ou json)", format)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "saída: markdown, html ou json")
	return cmd
}
