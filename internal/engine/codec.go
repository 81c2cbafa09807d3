package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const taskListSchemaURL = "https://daylist.local/schemas/tasks.json"

const taskListSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "text", "completed", "createdAt", "createdAtTime"],
		"properties": {
			"id": {"type": "integer"},
			"text": {"type": "string"},
			"completed": {"type": "boolean"},
			"createdAt": {"type": "string"},
			"createdAtTime": {"type": "string"}
		}
	}
}`

var taskListSchema = jsonschema.MustCompileString(taskListSchemaURL, taskListSchemaJSON)

// EncodeTasks serializes the full task list in the persisted layout.
// A nil list encodes as an empty array.
func EncodeTasks(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(data), nil
}

// DecodeTasks parses a persisted task list. The value must be valid JSON that
// matches the task list schema and carries unique ids.
func DecodeTasks(raw string) ([]Task, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	if err := taskListSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate tasks: %s", schemaMessages(err))
	}

	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	seen := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("validate tasks: duplicate id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func schemaMessages(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var msgs []string
	collectSchemaMessages(ve, &msgs)
	return strings.Join(msgs, "; ")
}

func collectSchemaMessages(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaMessages(cause, out)
	}
}
