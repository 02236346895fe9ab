package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"bhinnashad-api/models"
)

// SendKitchenTicket posts a formatted ticket to the kitchen printer bridge.
// The bridge URL comes from PRINTER_WEBHOOK_URL; when unset the ticket is
// skipped silently so order flow never depends on the printer being up.
func SendKitchenTicket(order *models.Order, itemNames []string) error {
	webhookURL := os.Getenv("PRINTER_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	payload := map[string]interface{}{
		"order_id": order.ID,
		"ticket":   FormatKitchenTicket(order, itemNames),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %v", err)
	}

	req, err := http.NewRequest("POST", webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := os.Getenv("PRINTER_WEBHOOK_TOKEN"); token != "" {
		req.Header.Set("Authorization", token)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send ticket: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("printer bridge returned status: %d", resp.StatusCode)
	}

	return nil
}

// FormatKitchenTicket renders a plain-text kitchen order ticket.
func FormatKitchenTicket(order *models.Order, itemNames []string) string {
	ticket := "KITCHEN ORDER\n\n"
	ticket += fmt.Sprintf("Order: #%d\n", order.ID)
	if order.TableNumber != nil {
		ticket += fmt.Sprintf("Table: %d\n", *order.TableNumber)
	} else {
		ticket += "Pickup\n"
	}
	ticket += "\nItems:\n"

	for i, item := range order.Items {
		name := fmt.Sprintf("item %d", item.MenuItemID)
		if i < len(itemNames) {
			name = itemNames[i]
		}
		ticket += fmt.Sprintf("%d. %s x%d\n", i+1, name, item.Quantity)
	}

	ticket += fmt.Sprintf("\nTime: %s", time.Now().Format("02/01/2006 15:04:05"))
	return ticket
}
