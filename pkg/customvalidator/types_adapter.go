package customvalidator

import (
	"reflect"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// registerNullTypes учит валидатор смотреть внутрь null.String и null.Int.
// Значение отдаём указателем: nil пропускается omitempty, а пришедший 0 или ""
// проверяется остальными правилами, как у *uint64.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			s := val.String
			return &s
		}
		return (*string)(nil)
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Int); ok && val.Valid {
			i := val.Int
			return &i
		}
		return (*int)(nil)
	}, null.Int{})
}
