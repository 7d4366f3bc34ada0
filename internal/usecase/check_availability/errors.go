package check_availability

import "errors"

// ErrInternal возвращается при ошибках хранилища; некорректный ввод ошибкой не считается
var ErrInternal = errors.New("check_availability: internal error")
