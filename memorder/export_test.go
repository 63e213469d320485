// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder

import "reflect"

// WordAddr returns the address of v's backing word.
func WordAddr[T Integer](v *Value[T]) uintptr {
	return reflect.ValueOf(v.w).Pointer()
}

// WordSize returns the allocation size of a word on backend b.
func WordSize(b Backend) uintptr {
	return reflect.TypeOf(NewWord(b)).Elem().Size()
}

// HasNoCopy reports whether Value[T] carries a vet copylocks marker.
func HasNoCopy[T Integer]() bool {
	t := reflect.TypeFor[Value[T]]()
	if t.NumField() == 0 {
		return false
	}
	f := t.Field(0)
	_, lock := reflect.PointerTo(f.Type).MethodByName("Lock")
	_, unlock := reflect.PointerTo(f.Type).MethodByName("Unlock")
	return lock && unlock
}
