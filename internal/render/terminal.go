package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/libredomains/checker/internal/checker"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/record"
	"github.com/libredomains/checker/internal/registry"
)

const indent = "   "

// PreviewSize is how many DNS records are listed unless all are requested.
const PreviewSize = 3

// Options tunes a [Terminal].
type Options struct {
	Owner          string
	Repo           string
	ShowAllRecords bool
	Emoji          bool
	Now            func() time.Time // nil means [time.Now]
	Location       *time.Location   // nil means [time.Local]
}

// Terminal is a [checker.View] writing plain text.
type Terminal struct {
	writer  io.Writer
	options Options

	mu            sync.Mutex
	submitEnabled bool
	busy          bool
	hint          string
}

var _ checker.View = (*Terminal)(nil)

// NewTerminal creates a view writing to w.
func NewTerminal(w io.Writer, options Options) *Terminal {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Location == nil {
		options.Location = time.Local
	}
	return &Terminal{
		writer:        w,
		options:       options,
		mu:            sync.Mutex{},
		submitEnabled: false,
		busy:          false,
		hint:          "",
	}
}

func (t *Terminal) icon(emoji string) string {
	if !t.options.Emoji {
		return ""
	}
	return emoji + " "
}

func (t *Terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.writer, format, args...)
}

// SubmitEnabled tells whether the last update enabled submission.
func (t *Terminal) SubmitEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.submitEnabled
}

// SetSubmitEnabled records whether submission is allowed.
func (t *Terminal) SetSubmitEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.submitEnabled = enabled
}

// SetBusy announces the start of a check.
func (t *Terminal) SetBusy(busy bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if busy && !t.busy {
		t.printf("%s检测中...\n", t.icon(string(pp.EmojiCheck)))
	}
	t.busy = busy
}

// ShowHint prints a new hint; repeated hints are printed once.
func (t *Terminal) ShowHint(hint string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if hint != "" && hint != t.hint {
		t.printf("%s%s\n", t.icon("⚠️"), hint)
	}
	t.hint = hint
}

// ClearResult forgets the hint so that it is printed again next time.
func (t *Terminal) ClearResult() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hint = ""
}

func resultIcon(k checker.Kind) string {
	switch k {
	case checker.KindAvailable:
		return "✅"
	case checker.KindUnavailable, checker.KindReserved:
		return "❌"
	case checker.KindZonePaused:
		return "⏸️"
	default:
		return "⚠️"
	}
}

func badge(k checker.Kind) string {
	switch k {
	case checker.KindAvailable:
		return "可申请"
	case checker.KindUnavailable:
		return "已注册"
	case checker.KindReserved:
		return "系统保留"
	case checker.KindZonePaused:
		return "暂停开放"
	default:
		return "检测失败"
	}
}

// ShowResult prints the outcome of a check.
func (t *Terminal) ShowResult(r checker.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s\n", t.icon(resultIcon(r.Kind)), r.Title)
	fmt.Fprintf(&sb, "%s\n", r.Message)
	t.field(&sb, "域名", r.FQDN())
	t.field(&sb, "状态", badge(r.Kind))

	switch {
	case r.Kind == checker.KindAvailable:
		t.field(&sb, "注册时间", "未注册")
		t.field(&sb, "所有者", "无")
	case r.Kind == checker.KindZonePaused:
		t.field(&sb, "注册时间", "不适用")
		t.field(&sb, "所有者", "不适用")
	case r.Kind == checker.KindUnavailable && r.Detail != nil:
		t.writeDetail(&sb, r, r.Detail)
	default:
		t.field(&sb, "注册时间", "未知")
		t.field(&sb, "所有者", "未知")
	}

	t.printf("%s", sb.String())
}

func (t *Terminal) field(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "%s%s: %s\n", indent, label, value)
}

func ownerText(o *record.Owner) string {
	if o == nil {
		return "未知"
	}
	name := o.Name
	if name == "" {
		name = "未知"
	}
	if o.GitHub != "" {
		name += " (@" + o.GitHub + ")"
	}
	return name
}

func (t *Terminal) writeDetail(sb *strings.Builder, r checker.Result, d *record.Record) {
	t.field(sb, "注册时间", FormatDate(d.RegistrationDate.In(t.options.Location)))
	t.field(sb, "所有者", ownerText(d.Owner))

	if d.Description != "" {
		t.field(sb, "用途描述", d.Description)
	}
	if d.Owner != nil && d.Owner.GitHub != "" {
		t.field(sb, "GitHub 用户", ProfileURL(d.Owner.GitHub))
	}
	if d.Owner != nil && d.Owner.Email != "" {
		t.field(sb, "联系邮箱", MaskEmail(d.Owner.Email))
	}
	if d.Creator != nil && d.Creator.GitHub != "" && (d.Owner == nil || d.Creator.GitHub != d.Owner.GitHub) {
		t.field(sb, "域名创建者", "@"+d.Creator.GitHub)
	}

	if d.RecordCount > 0 {
		types := make([]string, len(d.RecordTypes))
		for i, typ := range d.RecordTypes {
			types[i] = string(typ)
		}
		t.field(sb, "DNS 记录", fmt.Sprintf("%d 条记录 (%s)", d.RecordCount, strings.Join(types, ", ")))

		shown := d.Entries
		if !t.options.ShowAllRecords && len(shown) > PreviewSize {
			shown = shown[:PreviewSize]
		}
		for _, e := range shown {
			fmt.Fprintf(sb, "%s  %-5s %s → %s\n", indent, e.Type, e.Name, e.Content)
		}
		if len(shown) < len(d.Entries) {
			fmt.Fprintf(sb, "%s  查看全部 %d 条记录 (SHOW_ALL_RECORDS=true)\n", indent, len(d.Entries))
		}
	}

	if !d.LastModified.IsZero() {
		t.field(sb, "最后更新", fmt.Sprintf("%s (%s)",
			FormatDate(d.LastModified.In(t.options.Location)), TimeAgo(t.options.Now(), d.LastModified)))
	}

	t.field(sb, "配置文件", ConfigURL(t.options.Owner, t.options.Repo, r.Zone.Name, r.Name))
}

// ShowStats prints the counters of the selected zone.
func (t *Terminal) ShowStats(s registry.Stats) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s: 已注册 %d 个 / 全部 %d 个\n", t.icon(string(pp.EmojiRegistry)), s.Zone, s.ZoneCount, s.Total)
	if len(s.Recent) == 0 {
		fmt.Fprintf(&sb, "%s暂无注册域名\n", indent)
	} else {
		fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(s.Recent, " "))
	}
	if s.Degraded {
		fmt.Fprintf(&sb, "%s无法连接到 GitHub API，显示的是缓存数据。完整数据请访问 %s/tree/main/domains\n",
			t.icon(string(pp.EmojiFallback)), RepoURL(t.options.Owner, t.options.Repo))
	}
	t.printf("%s", sb.String())
}
