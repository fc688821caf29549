package directory

import (
	"os"
	"path/filepath"
	"testing"
)

func testDirectory() *Directory {
	return &Directory{
		Departments: []Department{
			{Name: "Marketing", Lists: []string{"101", "102"}},
			{Name: "Engineering", Lists: []string{"201"}},
		},
		Members: []Member{
			{ID: 1, Username: "huy.tran", Email: "huy@smap.vn", Role: "Developer", Department: "Engineering"},
			{ID: 2, Username: "lan.pham", Email: "lan@smap.vn", Role: "Designer", Department: "Marketing"},
			{ID: 3, Username: "minh.le", Email: "minh@smap.vn", Role: "Developer", Department: "Engineering"},
		},
	}
}

func TestLoad(t *testing.T) {
	content := `
departments:
  - name: Marketing
    lists: ["101", "102"]
members:
  - id: 1
    username: huy.tran
    email: huy@smap.vn
    role: Developer
    department: Engineering
`
	path := filepath.Join(t.TempDir(), "directory.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Size() != 1 {
		t.Errorf("Size = %d, want 1", d.Size())
	}
	lists, ok := d.DepartmentLists("marketing")
	if !ok || len(lists) != 2 {
		t.Errorf("DepartmentLists = %v, %v", lists, ok)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/directory.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFindMember(t *testing.T) {
	d := testDirectory()

	t.Run("exact username", func(t *testing.T) {
		m, ok := d.FindMember("huy.tran")
		if !ok || m.ID != 1 {
			t.Errorf("got %+v, %v", m, ok)
		}
	})

	t.Run("case-insensitive fragment", func(t *testing.T) {
		m, ok := d.FindMember("LAN")
		if !ok || m.ID != 2 {
			t.Errorf("got %+v, %v", m, ok)
		}
	})

	t.Run("email", func(t *testing.T) {
		m, ok := d.FindMember("minh@smap.vn")
		if !ok || m.ID != 3 {
			t.Errorf("got %+v, %v", m, ok)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, ok := d.FindMember("nobody"); ok {
			t.Error("expected not found")
		}
	})

	t.Run("empty ref", func(t *testing.T) {
		if _, ok := d.FindMember("  "); ok {
			t.Error("empty ref must not match")
		}
	})
}

func TestRoles(t *testing.T) {
	d := testDirectory()
	roles := d.Roles()
	if len(roles) != 2 {
		t.Fatalf("got %d roles, want 2", len(roles))
	}
	if roles[0].Role != "Developer" || roles[0].Count != 2 {
		t.Errorf("first role = %+v", roles[0])
	}
	if roles[1].Role != "Designer" || roles[1].Count != 1 {
		t.Errorf("second role = %+v", roles[1])
	}
}

func TestMembersOfDepartment(t *testing.T) {
	d := testDirectory()
	eng := d.MembersOfDepartment("engineering")
	if len(eng) != 2 {
		t.Errorf("got %d engineering members, want 2", len(eng))
	}
}
