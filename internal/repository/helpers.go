package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/forgo/carte/api/internal/database"
	"github.com/forgo/carte/api/internal/model"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already contains") ||
		strings.Contains(errStr, "already exists")
}

// parseMenuItemResult converts a single SurrealDB record into a MenuItem
func parseMenuItemResult(result interface{}) (*model.MenuItem, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Handle statement wrapper {status: "OK", result: [...]}
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			result = resp["result"]
		}
	}

	// Handle array wrapper
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	item := &model.MenuItem{
		ID:   getInt64(data, "item_id"),
		Name: getString(data, "name"),
	}
	if t := getTime(data, "created_at"); t != nil {
		item.CreatedAt = *t
	}

	return item, nil
}

// parseMenuItemsResult converts a SurrealDB query response into MenuItems
func parseMenuItemsResult(result []interface{}) ([]*model.MenuItem, error) {
	items := make([]*model.MenuItem, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, record := range resultData {
					item, err := parseMenuItemResult(record)
					if err != nil {
						continue
					}
					items = append(items, item)
				}
				continue
			}
		}

		item, err := parseMenuItemResult(res)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// extractCount extracts count from a SurrealDB count query result
func extractCount(result interface{}) int {
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok && len(resultData) > 0 {
				if data, ok := resultData[0].(map[string]interface{}); ok {
					return extractCountValue(data["count"])
				}
			}
		}
		// Direct access
		return extractCountValue(resp["count"])
	}
	return 0
}

// extractCountValue converts various numeric types to int
func extractCountValue(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt64 extracts an integer value from a map
func getInt64(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case uint64:
		return int64(v)
	}
	return 0
}

// getTime extracts a time value from a map
func getTime(m map[string]interface{}, key string) *time.Time {
	if v, ok := m[key].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return &t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
	}
	if t, ok := m[key].(time.Time); ok {
		return &t
	}
	// Handle SurrealDB CustomDateTime type
	if dt, ok := m[key].(surrealmodels.CustomDateTime); ok {
		t := dt.Time
		return &t
	}
	if dt, ok := m[key].(*surrealmodels.CustomDateTime); ok && dt != nil {
		t := dt.Time
		return &t
	}
	return nil
}
