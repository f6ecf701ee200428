package sheetsclient

import (
	"fmt"
)

// WriteTable writes a rectangular table to the named tab starting at A1
// If the tab does not exist it is created, otherwise its contents are cleared first
// so that stale rows from a previous publish never survive
func (c *Client) WriteTable(spreadsheetID, tabTitle string, rows [][]interface{}) error {
	exists, err := c.SheetExists(spreadsheetID, tabTitle)
	if err != nil {
		return fmt.Errorf("failed to check for tab %q: %w", tabTitle, err)
	}

	if exists {
		if err := c.ClearValues(spreadsheetID, fmt.Sprintf("'%s'", tabTitle)); err != nil {
			return fmt.Errorf("failed to clear tab %q: %w", tabTitle, err)
		}
	} else {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab %q: %w", tabTitle, err)
		}
	}

	if err := c.UpdateValues(spreadsheetID, fmt.Sprintf("'%s'!A1", tabTitle), rows); err != nil {
		return fmt.Errorf("failed to write tab %q: %w", tabTitle, err)
	}

	return nil
}
