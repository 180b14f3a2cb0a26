package handlers

import (
	"Recipe-API/domain"
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var recipeFields = []string{"title", "time_minutes", "price", "link", "description", "tags", "ingredients"}

// rejectNulls fails for the first key that a JSON body sets to null. Decoding
// into pointer fields cannot tell null apart from an absent key, and none of
// these fields may be cleared with null.
func rejectNulls(c *fiber.Ctx, keys ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return nil
	}
	for _, key := range keys {
		if raw, ok := fields[key]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return domain.NewValidationError(key + ": this field may not be null")
		}
	}
	return nil
}

func userIDFromLocals(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// paramID reads the :id route parameter. Anything that is not a positive
// integer cannot name a record, so it is reported as not found.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}

// queryIDs parses a comma separated list of ids such as "1,2,3".
func queryIDs(c *fiber.Ctx, key string) ([]uint, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, domain.NewValidationError(key + ": expected a comma separated list of ids")
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func queryFlag(c *fiber.Ctx, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
