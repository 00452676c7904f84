package api

import (
	"fmt"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// assembleBoard groups tasks under their categories, preserving the
// creation order of both. Returns an error when a task references a
// category that is not in the list; the stores guarantee that cannot
// happen for a consistent backend.
func assembleBoard(categories []*domain.Category, tasks []*domain.Task) (BoardResponse, error) {
	ordered := make([]BoardCategory, 0, len(categories))
	indices := make(map[string]int, len(categories))
	for i, category := range categories {
		ordered = append(ordered, BoardCategory{
			CategoryID:   category.ID,
			Label:        category.Label,
			OrderedTasks: make([]TaskResponse, 0),
		})
		indices[category.ID] = i
	}

	for _, task := range tasks {
		idx, ok := indices[task.CategoryID]
		if !ok {
			return BoardResponse{}, fmt.Errorf(
				"task %s is assigned to category %s, but the category is missing",
				task.ID, task.CategoryID)
		}
		ordered[idx].OrderedTasks = append(ordered[idx].OrderedTasks, TaskResponse{
			TaskID:      task.ID,
			CategoryID:  task.CategoryID,
			Label:       task.Label,
			Description: task.Description,
		})
	}

	return BoardResponse{OrderedCategories: ordered}, nil
}
