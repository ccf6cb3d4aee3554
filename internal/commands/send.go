package commands

import (
	"context"
	"fmt"

	"github.com/vburojevic/pocket-cli/internal/models"
	"github.com/vburojevic/pocket-cli/internal/output"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

// Send runs one modify action. The result is written even when Pocket
// reports the action as failed; the failure is then returned as well.
func Send(ctx context.Context, api Sender, action pocket.Action, f *output.Formatter) error {
	if err := action.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	resp, err := api.Send(ctx, pocket.SendRequest{Actions: []pocket.Action{action}})
	if err != nil {
		return err
	}
	res, err := models.FromSendResponse(resp)
	if err != nil {
		return fmt.Errorf("decode %s result: %w", action.Kind, err)
	}
	if err := f.Write(res); err != nil {
		return err
	}
	if res.ActionError != nil {
		return fmt.Errorf("%s failed: %s (code %d)", action.Kind, res.ActionError.Message, res.ActionError.Code)
	}
	return nil
}
