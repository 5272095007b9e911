package repositories

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilter(t *testing.T) {
	if got := SearchFilter("", "name"); got != nil {
		t.Errorf("SearchFilter with empty term = %v, want nil", got)
	}
	if got := SearchFilter("abc"); got != nil {
		t.Errorf("SearchFilter with no fields = %v, want nil", got)
	}

	filter := SearchFilter("data", "courseName", "courseCode")
	clauses, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("SearchFilter = %v, want $or clause list", filter)
	}
	if len(clauses) != 2 {
		t.Fatalf("got %d clauses, want 2", len(clauses))
	}

	regex, ok := clauses[0]["courseName"].(bson.M)["$regex"].(primitive.Regex)
	if !ok {
		t.Fatalf("clause = %v, want $regex", clauses[0])
	}
	if regex.Pattern != "data" || regex.Options != "i" {
		t.Errorf("regex = %+v, want case-insensitive match on %q", regex, "data")
	}
}

func TestMergeFilters(t *testing.T) {
	search := SearchFilter("x", "name")

	tests := []struct {
		name    string
		filters []bson.M
		want    bson.M
	}{
		{
			name:    "all empty",
			filters: []bson.M{{}, nil},
			want:    bson.M{},
		},
		{
			name:    "exact only",
			filters: []bson.M{{"isActive": true}, nil},
			want:    bson.M{"isActive": true},
		},
		{
			name:    "search only",
			filters: []bson.M{{}, search},
			want:    search,
		},
		{
			name:    "exact and search",
			filters: []bson.M{{"isActive": true}, search},
			want:    bson.M{"$and": []bson.M{search, {"isActive": true}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeFilters(tt.filters...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeFilters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildCourseFilter(t *testing.T) {
	departmentID := primitive.NewObjectID()
	isActive := true
	semester := 3

	filter := buildCourseFilter(CourseListFilter{
		DepartmentID: &departmentID,
		Type:         "Undergraduate",
		Semester:     &semester,
		IsActive:     &isActive,
	})

	want := bson.M{
		"department": departmentID,
		"type":       "Undergraduate",
		"semester":   3,
		"isActive":   true,
	}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("buildCourseFilter() = %v, want %v", filter, want)
	}
}

func TestBuildCourseFilterOmitsUnsetConstraints(t *testing.T) {
	filter := buildCourseFilter(CourseListFilter{})
	if len(filter) != 0 {
		t.Errorf("buildCourseFilter(empty) = %v, want empty", filter)
	}
}

func TestBuildStudentFilterWithSearch(t *testing.T) {
	filter := buildStudentFilter(StudentListFilter{
		Status: "Active",
		Search: "arjun",
	})

	clauses, ok := filter["$and"].([]bson.M)
	if !ok {
		t.Fatalf("filter = %v, want $and of search and exact constraints", filter)
	}
	if len(clauses) != 2 {
		t.Fatalf("got %d clauses, want 2", len(clauses))
	}

	or, ok := clauses[0]["$or"].([]bson.M)
	if !ok {
		t.Fatalf("first clause = %v, want $or search", clauses[0])
	}
	if len(or) != 4 {
		t.Errorf("search spans %d fields, want 4", len(or))
	}
	if !reflect.DeepEqual(clauses[1], bson.M{"status": "Active"}) {
		t.Errorf("exact clause = %v, want status constraint", clauses[1])
	}
}

func TestBuildDepartmentFilterHonorsExplicitInactive(t *testing.T) {
	inactive := false
	filter := buildDepartmentFilter(DepartmentListFilter{IsActive: &inactive})
	if got, ok := filter["isActive"]; !ok || got != false {
		t.Errorf("filter = %v, want isActive false", filter)
	}
}

func TestBuildFacultyFilter(t *testing.T) {
	departmentID := primitive.NewObjectID()
	filter := buildFacultyFilter(FacultyListFilter{
		DepartmentID: &departmentID,
		Designation:  "Professor",
	})

	want := bson.M{
		"department":  departmentID,
		"designation": "Professor",
	}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("buildFacultyFilter() = %v, want %v", filter, want)
	}
}
