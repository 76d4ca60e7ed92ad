package entityset

type Option func(o *options)

type options struct {
	maxTop int
}

// WithMaxTop 服务端单页上限, $top 超过时按上限截断, 0 表示不限制
func WithMaxTop(n int) Option {
	return func(o *options) {
		o.maxTop = n
	}
}
