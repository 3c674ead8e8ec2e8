// Package referential holds the immutable task-time reference table mapping
// task codes to average execution times.
package referential

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"effectif-engine/pkg/core/model"
)

var validate = validator.New()

// Referential is the task-time lookup table. Built once per simulation and
// never mutated afterwards.
type Referential struct {
	tasks map[string]model.Task
	order []string
}

// New builds a referential from a task list. Duplicate codes are rejected:
// the table must resolve each code unambiguously at ingestion, not at read
// time.
func New(tasks []model.Task) (*Referential, error) {
	r := &Referential{
		tasks: make(map[string]model.Task, len(tasks)),
		order: make([]string, 0, len(tasks)),
	}
	for i, task := range tasks {
		if err := validate.Struct(task); err != nil {
			return nil, fmt.Errorf("invalid task at index %d: %w", i, err)
		}
		if _, exists := r.tasks[task.Code]; exists {
			return nil, fmt.Errorf("duplicate task code %q", task.Code)
		}
		r.tasks[task.Code] = task
		r.order = append(r.order, task.Code)
	}
	return r, nil
}

// Lookup resolves a task code to its referential entry
func (r *Referential) Lookup(code string) (model.Task, bool) {
	task, ok := r.tasks[code]
	return task, ok
}

// Tasks returns the entries in load order
func (r *Referential) Tasks() []model.Task {
	tasks := make([]model.Task, 0, len(r.order))
	for _, code := range r.order {
		tasks = append(tasks, r.tasks[code])
	}
	return tasks
}

// Len returns the number of entries
func (r *Referential) Len() int {
	return len(r.tasks)
}

// refFile is the YAML shape of a referential file
type refFile struct {
	Tasks []model.Task `yaml:"tasks"`
}

// LoadFile reads a referential from a YAML file
func LoadFile(path string) (*Referential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read referential file: %w", err)
	}

	var file refFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse referential file: %w", err)
	}

	if len(file.Tasks) == 0 {
		return nil, fmt.Errorf("referential file %s contains no tasks", path)
	}

	return New(file.Tasks)
}
