package components

import (
	"fmt"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/pthm/hxui"
)

// countdownUnits lists the countdown parts from largest to smallest.
var countdownUnits = []struct {
	part string
	size time.Duration
}{
	{"days", 24 * time.Hour},
	{"hours", time.Hour},
	{"minutes", time.Minute},
	{"seconds", time.Second},
}

// Countdown shows a duration broken down into days, hours, minutes and
// seconds. The countdown behavior controller ticks it down client-side.
//
// Options: duration (seconds as a number, a time.Duration, or a string
// such as "1h30m"). The labels modifier adds a unit label after each
// number.
var Countdown = hxui.Define("countdown",
	hxui.Part(hxui.ComponentPart, hxui.Tag("span")),
	hxui.Part("days", hxui.Tag("span")),
	hxui.Part("hours", hxui.Tag("span")),
	hxui.Part("minutes", hxui.Tag("span")),
	hxui.Part("seconds", hxui.Tag("span")),
	hxui.Modifiers("labels"),
	hxui.OnSetup(func(s *hxui.Setup) {
		d, err := parseDuration(s.Option("duration", 0))
		if err != nil {
			s.Fail(err)
			return
		}

		s.AddCSS(hxui.ComponentPart, "countdown", "font-mono")
		s.AddBehaviorController(hxui.ComponentPart, "countdown")
		s.AddHTML(hxui.ComponentPart, hxui.Attrs{
			"data": hxui.Attrs{"countdown_duration_value": int64(d / time.Second)},
		})

		for part, value := range Breakdown(d) {
			s.AddHTML(part, hxui.Attrs{
				"style": fmt.Sprintf("--value:%d;", value),
				"aria":  hxui.Attrs{"label": strconv.Itoa(value)},
			})
		}
	}),
	hxui.OnRender(func(c *hxui.Component) templ.Component {
		units := make([]templ.Component, 0, len(countdownUnits)*2)
		for _, u := range countdownUnits {
			units = append(units, c.Part(u.part))
			if c.HasModifier("labels") {
				units = append(units, hxui.Text(u.part[:1]))
			}
		}
		return c.Part(hxui.ComponentPart, units...)
	}),
)

// Breakdown splits d into whole days, hours, minutes and seconds keyed by
// countdown part name. Negative durations count as zero.
func Breakdown(d time.Duration) map[string]int {
	if d < 0 {
		d = 0
	}
	out := make(map[string]int, len(countdownUnits))
	for _, u := range countdownUnits {
		n := d / u.size
		out[u.part] = int(n)
		d -= n * u.size
	}
	return out
}

func parseDuration(v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case int:
		return time.Duration(d) * time.Second, nil
	case int8:
		return time.Duration(d) * time.Second, nil
	case int16:
		return time.Duration(d) * time.Second, nil
	case int32:
		return time.Duration(d) * time.Second, nil
	case int64:
		return time.Duration(d) * time.Second, nil
	case uint8:
		return time.Duration(d) * time.Second, nil
	case uint16:
		return time.Duration(d) * time.Second, nil
	case uint32:
		return time.Duration(d) * time.Second, nil
	case uint:
		return time.Duration(d) * time.Second, nil
	case uint64:
		return time.Duration(d) * time.Second, nil
	case float32:
		return time.Duration(float64(d) * float64(time.Second)), nil
	case float64:
		return time.Duration(d * float64(time.Second)), nil
	case string:
		if secs, err := strconv.ParseInt(d, 10, 64); err == nil {
			return time.Duration(secs) * time.Second, nil
		}
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, fmt.Errorf("countdown: invalid duration %q: %w", d, err)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("countdown: unsupported duration type %T", v)
}
