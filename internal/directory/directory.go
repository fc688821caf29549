package directory

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the directory YAML at path.
func Load(path string) (*Directory, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read directory file %s: %w", path, err)
	}

	var d Directory
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("failed to parse directory file %s: %w", path, err)
	}

	return &d, nil
}

// Size returns the roster size.
func (d *Directory) Size() int {
	return len(d.Members)
}

// FindDepartment resolves a department name (case-insensitive) to its
// canonical entry.
func (d *Directory) FindDepartment(name string) (Department, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, dept := range d.Departments {
		if strings.ToLower(dept.Name) == name {
			return dept, true
		}
	}
	return Department{}, false
}

// DepartmentLists resolves a department name to its ClickUp list IDs.
func (d *Directory) DepartmentLists(name string) ([]string, bool) {
	dept, ok := d.FindDepartment(name)
	return dept.Lists, ok
}

// DepartmentOfList maps a ClickUp list id back to the department it belongs
// to.
func (d *Directory) DepartmentOfList(listID string) (string, bool) {
	for _, dept := range d.Departments {
		for _, id := range dept.Lists {
			if id == listID {
				return dept.Name, true
			}
		}
	}
	return "", false
}

// FindMember resolves a person reference (username, email, or a fragment of
// either, case-insensitive) to a roster member.
func (d *Directory) FindMember(ref string) (Member, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return Member{}, false
	}

	// Exact username/email match wins over substring match.
	for _, m := range d.Members {
		if strings.ToLower(m.Username) == ref || strings.ToLower(m.Email) == ref {
			return m, true
		}
	}
	for _, m := range d.Members {
		if strings.Contains(strings.ToLower(m.Username), ref) ||
			strings.Contains(strings.ToLower(m.Email), ref) {
			return m, true
		}
	}
	return Member{}, false
}

// FindMemberByID resolves a numeric ClickUp user id to a roster member.
func (d *Directory) FindMemberByID(id int) (Member, bool) {
	for _, m := range d.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// MembersOfDepartment returns roster members belonging to the department.
func (d *Directory) MembersOfDepartment(name string) []Member {
	name = strings.ToLower(strings.TrimSpace(name))
	var out []Member
	for _, m := range d.Members {
		if strings.ToLower(m.Department) == name {
			out = append(out, m)
		}
	}
	return out
}

// Roles returns the distinct roles in the roster with member counts,
// preserving first-seen order.
func (d *Directory) Roles() []RoleCount {
	var order []string
	counts := make(map[string]int)
	for _, m := range d.Members {
		role := m.Role
		if role == "" {
			role = "unknown"
		}
		if _, seen := counts[role]; !seen {
			order = append(order, role)
		}
		counts[role]++
	}

	out := make([]RoleCount, 0, len(order))
	for _, role := range order {
		out = append(out, RoleCount{Role: role, Count: counts[role]})
	}
	return out
}

// RoleCount pairs a role name with how many members hold it.
type RoleCount struct {
	Role  string
	Count int
}
