package tasks

import (
	"slices"
	"strings"

	"github.com/runvoy/ecs-find-tasks/internal/constants"
)

// TagFilter maps a tag key to the value a task must carry for that key.
// A nil value stands for a spec written without a value ("key" instead of "key:value");
// it only matches a task tag that has no value either.
type TagFilter map[string]*string

// ParseTagFilter parses a comma-separated list of key:value specs.
// Blank specs are skipped, so an empty input gives an empty filter that matches nothing.
// Text after a second ':' is ignored and a repeated key keeps its last value.
func ParseTagFilter(input string) TagFilter {
	filter := TagFilter{}
	for spec := range strings.SplitSeq(input, constants.TagSpecSeparator) {
		if spec == "" {
			continue
		}

		parts := strings.Split(spec, constants.TagKeyValueSeparator)
		if len(parts) < 2 {
			filter[parts[0]] = nil
			continue
		}
		value := parts[1]
		filter[parts[0]] = &value
	}
	return filter
}

// Matches reports whether any tag of task has its key in the filter with the same value.
func (f TagFilter) Matches(task Task) bool {
	for _, tag := range task.Tags {
		want, ok := f[tag.Key]
		if !ok {
			continue
		}
		switch {
		case want == nil && tag.Value == nil:
			return true
		case want != nil && tag.Value != nil && *want == *tag.Value:
			return true
		}
	}
	return false
}

// String renders the filter for log lines.
func (f TagFilter) String() string {
	specs := make([]string, 0, len(f))
	for key, value := range f {
		if value == nil {
			specs = append(specs, key)
			continue
		}
		specs = append(specs, key+constants.TagKeyValueSeparator+*value)
	}
	slices.Sort(specs)
	return strings.Join(specs, constants.TagSpecSeparator)
}

// MatchTasks returns the ARNs of the tasks matched by filter, keeping their order.
func MatchTasks(tasks []Task, filter TagFilter) []string {
	matched := []string{}
	for _, task := range tasks {
		if filter.Matches(task) {
			matched = append(matched, task.ARN)
		}
	}
	return matched
}
