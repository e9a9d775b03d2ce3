package cli

import (
	"context"
	"fmt"

	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft content with the generation service",
	}

	cmd.AddCommand(
		newDraftContentCmd(app),
		newDraftImageCmd(app),
	)

	return cmd
}

func newDraftContentCmd(app *App) *cobra.Command {
	var reference string
	var save bool

	cmd := &cobra.Command{
		Use:   "content ITEM",
		Short: "Generate post content from an item's title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, itemID)
			if err != nil {
				return err
			}

			if err := app.Generation.DraftContent(ctx, item, reference); err != nil {
				return err
			}

			fmt.Printf("%s\n\n%s\n", formatter.Header("Generated draft"), item.Content)
			if !save {
				fmt.Println(formatter.Dim("\nRe-run with --save to keep it."))
				return nil
			}
			if err := app.Items.Update(ctx, item); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("\nSaved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&reference, "reference", "", "Source material to draft from")
	cmd.Flags().BoolVar(&save, "save", false, "Save the generated content to the item")

	return cmd
}

func newDraftImageCmd(app *App) *cobra.Command {
	var style string
	var save bool

	cmd := &cobra.Command{
		Use:   "image ITEM",
		Short: "Generate an image for an item's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, itemID)
			if err != nil {
				return err
			}

			url, err := app.Generation.DraftImage(ctx, item, style)
			if err != nil {
				return err
			}

			fmt.Printf("Generated image: %s\n", formatter.StyleBlue.Render(url))
			if !save {
				return nil
			}
			item.MediaURLs = append(item.MediaURLs, url)
			if err := app.Items.Update(ctx, item); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Attached to item."))
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Image style hint")
	cmd.Flags().BoolVar(&save, "save", false, "Attach the image to the item")

	return cmd
}
