package middleware

import (
	"net/http"
)

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain оборачивает h так, что первый мидлвар в списке выполняется первым.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := range mws {
		h = mws[len(mws)-1-i](h)
	}
	return h
}

// statusWriter запоминает первый записанный статус и число байт тела.
// Один экземпляр разделяется всеми мидлварами запроса.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

// wrap возвращает уже существующий statusWriter или оборачивает w.
func wrap(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.started() {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if !w.started() {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

// Unwrap нужен http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// started сообщает, ушли ли клиенту заголовки ответа.
func (w *statusWriter) started() bool { return w.status != 0 }

// Status — итоговый статус; пустой ответ net/http отдаёт как 200.
func (w *statusWriter) Status() int {
	if !w.started() {
		return http.StatusOK
	}
	return w.status
}
