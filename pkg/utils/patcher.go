// Файл: pkg/utils/patcher.go
package utils

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/aarondl/null/v8"
)

// ApplyPatch переносит в entity только те поля patchDTO, которые реально пришли в теле запроса.
// Соответствие полей - по имени Go-поля, наличие - по json-тегу в rawRequestBody.
// Явный null в теле обнуляет поле сущности.
func ApplyPatch(entity interface{}, patchDTO interface{}, rawRequestBody []byte) (bool, error) {
	var sentFields map[string]interface{}
	if err := json.Unmarshal(rawRequestBody, &sentFields); err != nil {
		return false, err
	}

	entityValue := reflect.ValueOf(entity).Elem()
	patchDTOValue := reflect.ValueOf(patchDTO)
	if patchDTOValue.Kind() == reflect.Ptr {
		patchDTOValue = patchDTOValue.Elem()
	}
	entityType := entityValue.Type()
	changed := false

	for i := 0; i < patchDTOValue.NumField(); i++ {
		patchField := patchDTOValue.Field(i)
		patchFieldType := patchDTOValue.Type().Field(i)
		jsonFieldName := strings.Split(patchFieldType.Tag.Get("json"), ",")[0]

		if _, fieldWasSent := sentFields[jsonFieldName]; !fieldWasSent {
			continue
		}

		entityFieldName := patchFieldType.Name
		if _, found := entityType.FieldByName(entityFieldName); !found {
			continue
		}

		entityFieldValue := entityValue.FieldByName(entityFieldName)
		if !entityFieldValue.IsValid() || !entityFieldValue.CanSet() {
			continue
		}
		changed = true

		if sentFields[jsonFieldName] == nil {
			entityFieldValue.Set(reflect.Zero(entityFieldValue.Type()))
			continue
		}

		switch patchValue := patchField.Interface().(type) {

		case *string:
			if patchValue != nil {
				if entityFieldValue.Kind() == reflect.String {
					entityFieldValue.SetString(*patchValue)
				} else if entityFieldValue.Type() == reflect.TypeOf(new(string)) {
					v := *patchValue
					entityFieldValue.Set(reflect.ValueOf(&v))
				}
			}

		case null.String:
			if entityFieldValue.Type() == reflect.TypeOf(new(string)) {
				if patchValue.Valid {
					v := patchValue.String
					entityFieldValue.Set(reflect.ValueOf(&v))
				} else {
					entityFieldValue.Set(reflect.Zero(entityFieldValue.Type()))
				}
			} else if entityFieldValue.Kind() == reflect.String {
				if patchValue.Valid {
					entityFieldValue.SetString(patchValue.String)
				}
			}

		case null.Int:
			targetType := entityFieldValue.Type()
			if !patchValue.Valid {
				entityFieldValue.Set(reflect.Zero(targetType))
				continue
			}
			val64 := patchValue.Int
			switch targetType.Kind() {
			case reflect.Ptr:
				switch targetType {
				case reflect.TypeOf(new(int)):
					val := int(val64)
					entityFieldValue.Set(reflect.ValueOf(&val))
				case reflect.TypeOf(new(uint64)):
					val := uint64(val64)
					entityFieldValue.Set(reflect.ValueOf(&val))
				}
			case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
				entityFieldValue.Set(reflect.ValueOf(val64).Convert(targetType))
			}

		case *bool:
			if patchValue != nil {
				if entityFieldValue.Kind() == reflect.Bool {
					entityFieldValue.SetBool(*patchValue)
				} else if entityFieldValue.Type() == reflect.TypeOf(new(bool)) {
					v := *patchValue
					entityFieldValue.Set(reflect.ValueOf(&v))
				}
			}
		}
	}
	return changed, nil
}
