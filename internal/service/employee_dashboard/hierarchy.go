package employee_dashboard

import (
	"sort"

	empDashboard "github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee_dashboard"
	"golang.org/x/text/language"
)

const (
	defaultManagerTitle  = "Manager"
	defaultEmployeeTitle = "Employee"
)

// flattenHierarchy orders the org chart as: direct manager, the employee,
// then every subordinate depth-first (siblings by name). Each employee
// appears once even if the parent links form a cycle.
func (s *EmployeeDashboardServiceImpl) flattenHierarchy(lang language.Tag, self *empDashboard.EmployeeData, rows []empDashboard.HierarchyData) []empDashboard.HierarchyNode {
	byID := make(map[string]empDashboard.HierarchyData, len(rows))
	children := make(map[string][]empDashboard.HierarchyData)
	for _, row := range rows {
		if _, seen := byID[row.ID]; seen {
			continue
		}
		byID[row.ID] = row
		if row.ParentID != nil && row.ID != self.ID {
			children[*row.ParentID] = append(children[*row.ParentID], row)
		}
	}
	for parent := range children {
		siblings := children[parent]
		sort.Slice(siblings, func(i, j int) bool {
			if siblings[i].Name != siblings[j].Name {
				return siblings[i].Name < siblings[j].Name
			}
			return siblings[i].ID < siblings[j].ID
		})
	}

	nodes := make([]empDashboard.HierarchyNode, 0, len(byID))
	visited := make(map[string]bool, len(byID))

	var selfPID *string
	if self.ParentID != nil {
		if manager, ok := byID[*self.ParentID]; ok && manager.ID != self.ID {
			nodes = append(nodes, s.hierarchyNode(lang, manager, nil, defaultManagerTitle))
			visited[manager.ID] = true
			selfPID = &manager.ID
		}
	}

	selfRow, ok := byID[self.ID]
	if !ok {
		selfRow = empDashboard.HierarchyData{
			ID:         self.ID,
			ParentID:   self.ParentID,
			Name:       self.Name,
			JobName:    self.JobName,
			AvatarPath: self.AvatarPath,
		}
	}
	nodes = append(nodes, s.hierarchyNode(lang, selfRow, selfPID, defaultEmployeeTitle))
	visited[self.ID] = true

	var walk func(parentID string)
	walk = func(parentID string) {
		for _, child := range children[parentID] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			pid := parentID
			nodes = append(nodes, s.hierarchyNode(lang, child, &pid, defaultEmployeeTitle))
			walk(child.ID)
		}
	}
	walk(self.ID)

	return nodes
}

func (s *EmployeeDashboardServiceImpl) hierarchyNode(lang language.Tag, row empDashboard.HierarchyData, pid *string, fallbackTitle string) empDashboard.HierarchyNode {
	title := row.JobName.Resolve(lang, s.settings.DefaultLanguage)
	if title == "" {
		title = fallbackTitle
	}
	return empDashboard.HierarchyNode{
		ID:    row.ID,
		PID:   pid,
		Name:  row.Name,
		Title: title,
		Img:   s.avatars.URL(derefString(row.AvatarPath)),
	}
}
