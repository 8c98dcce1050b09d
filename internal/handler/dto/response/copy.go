package response

import (
	"github.com/jinzhu/copier"
)

// copyList maps read views onto response items by field name.
func copyList[T any, S any](src []S) ([]T, error) {
	out := make([]T, 0, len(src))
	if len(src) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, src); err != nil {
		return nil, err
	}
	return out, nil
}

func copyOne[T any, S any](src *S) (*T, error) {
	var out T
	if err := copier.Copy(&out, src); err != nil {
		return nil, err
	}
	return &out, nil
}
