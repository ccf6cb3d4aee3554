package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vburojevic/pocket-cli/internal/commands"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

type itemAction struct {
	use   string
	kind  pocket.ActionKind
	short string
	tags  bool
}

var itemCmds = []itemAction{
	{use: "archive", kind: pocket.ActionArchive, short: "Archive an item"},
	{use: "readd", kind: pocket.ActionReadd, short: "Move an archived item back to the list"},
	{use: "favorite", kind: pocket.ActionFavorite, short: "Mark an item as a favorite"},
	{use: "unfavorite", kind: pocket.ActionUnfavorite, short: "Remove an item from favorites"},
	{use: "delete", kind: pocket.ActionDelete, short: "Permanently delete an item"},
	{use: "tags-clear", kind: pocket.ActionTagsClear, short: "Remove every tag from an item"},
	{use: "tags-add", kind: pocket.ActionTagsAdd, short: "Add tags to an item", tags: true},
	{use: "tags-remove", kind: pocket.ActionTagsRemove, short: "Remove tags from an item", tags: true},
	{use: "tags-replace", kind: pocket.ActionTagsReplace, short: "Replace all tags of an item", tags: true},
}

func newSendCmds(a *app) []*cobra.Command {
	out := make([]*cobra.Command, 0, len(itemCmds))
	for _, ia := range itemCmds {
		out = append(out, newItemCmd(a, ia))
	}
	return out
}

func parseItemID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, usageError(fmt.Errorf("invalid item id %q", s))
	}
	return id, nil
}

func newItemCmd(a *app, ia itemAction) *cobra.Command {
	var at *time.Time
	var tags []string
	cmd := &cobra.Command{
		Use:   ia.use + " <item-id>",
		Short: ia.short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			action := pocket.ItemAction(ia.kind, id, at)
			if ia.tags {
				if len(tags) == 0 {
					return usageError(errors.New("at least one --tag is required"))
				}
				action = pocket.TagsAction(ia.kind, id, tags, at)
			}
			return a.send(cmd, action)
		},
	}
	cmd.Flags().Var(timeFlag{dst: &at}, "time", "when the action happened (RFC 3339, default now)")
	if ia.tags {
		cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag (repeatable)")
	}
	return cmd
}

func (a *app) send(cmd *cobra.Command, action pocket.Action) error {
	if err := action.Validate(); err != nil {
		return usageError(err)
	}
	client, err := a.client(true)
	if err != nil {
		return err
	}
	return commands.Send(cmd.Context(), client, action, a.formatter())
}

func newTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Rename or delete a tag across all items",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var renameAt *time.Time
	rename := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a tag",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd, pocket.RenameTag(args[0], args[1], renameAt))
		},
	}
	rename.Flags().Var(timeFlag{dst: &renameAt}, "time", "when the action happened (RFC 3339, default now)")

	var deleteAt *time.Time
	del := &cobra.Command{
		Use:   "delete <tag>",
		Short: "Delete a tag from every item",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd, pocket.DeleteTag(args[0], deleteAt))
		},
	}
	del.Flags().Var(timeFlag{dst: &deleteAt}, "time", "when the action happened (RFC 3339, default now)")

	cmd.AddCommand(rename, del)
	return cmd
}
