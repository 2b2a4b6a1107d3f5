package discord

// When returns fn(v) if cond holds, v otherwise.
//
//	msg = discord.When(msg, report.HasFile(), func(m discord.Message) discord.Message {
//		return m.WithFile(report.Attachment())
//	})
func When[T any](v T, cond bool, fn func(T) T) T {
	if cond {
		return fn(v)
	}
	return v
}

// Unless returns fn(v) if cond does not hold, v otherwise.
func Unless[T any](v T, cond bool, fn func(T) T) T {
	return When(v, !cond, fn)
}
