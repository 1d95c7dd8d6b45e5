package domain

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var tasksSchemaJSON string

const tasksSchemaURL = "todo://tasks.schema.json"

var (
	tasksSchemaOnce sync.Once
	tasksSchema     *jsonschema.Schema
	tasksSchemaErr  error
)

func compiledTasksSchema() (*jsonschema.Schema, error) {
	tasksSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(tasksSchemaURL, strings.NewReader(tasksSchemaJSON)); err != nil {
			tasksSchemaErr = fmt.Errorf("add tasks schema: %w", err)
			return
		}
		tasksSchema, tasksSchemaErr = compiler.Compile(tasksSchemaURL)
	})
	return tasksSchema, tasksSchemaErr
}

// EncodeTasks serializes tasks to the stored form: a JSON array of
// {id, text, date, completed} objects in list order.
func EncodeTasks(tasks TaskList) ([]byte, error) {
	if tasks == nil {
		tasks = TaskList{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// DecodeTasks parses the stored form.
// Empty input and a JSON null both decode to an empty list.
// Anything that is not a valid task array returns an error wrapping ErrCorruptData.
func DecodeTasks(data []byte) (TaskList, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return TaskList{}, nil
	}

	schema, err := compiledTasksSchema()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	var tasks TaskList
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if tasks == nil {
		tasks = TaskList{}
	}
	return tasks, nil
}
