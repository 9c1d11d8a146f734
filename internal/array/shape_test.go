package array

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{3, 4}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{3, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShapeStrides(t *testing.T) {
	s := Shape{2, 3, 4}
	strides := s.Strides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("Strides()[%d] = %d, want %d", i, strides[i], want[i])
		}
	}

	if got := (Shape{}).Strides(); len(got) != 0 {
		t.Errorf("scalar strides = %v, want empty", got)
	}
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	if !s.Equal(c) {
		t.Error("clone not equal to source")
	}
	c[0] = 9
	if s[0] != 2 {
		t.Error("clone shares backing with source")
	}
	if s.Equal(Shape{2}) || s.Equal(Shape{2, 4}) {
		t.Error("Equal too permissive")
	}
}
