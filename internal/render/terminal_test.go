package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libredomains/checker/internal/checker"
	"github.com/libredomains/checker/internal/record"
	"github.com/libredomains/checker/internal/registry"
	"github.com/libredomains/checker/internal/render"
	"github.com/libredomains/checker/internal/zone"
)

//nolint:gochecknoglobals
var (
	su  = zone.Zone{Name: "ciao.su", Enabled: true, Path: "ciao.su"}
	now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newTerminal(buf *strings.Builder, showAll bool) *render.Terminal {
	return render.NewTerminal(buf, render.Options{
		Owner:          "bestzwei",
		Repo:           "LibreDomains",
		ShowAllRecords: showAll,
		Emoji:          false,
		Now:            func() time.Time { return now },
		Location:       time.UTC,
	})
}

func result(kind checker.Kind, name, title, message string, detail *record.Record) checker.Result {
	return checker.Result{Kind: kind, Zone: su, Name: name, Title: title, Message: message, Detail: detail}
}

func TestShowResultAvailable(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	newTerminal(&buf, false).ShowResult(
		result(checker.KindAvailable, "te-st", "域名可用！", `"te-st.ciao.su" 可以申请`, nil))

	require.Equal(t, `域名可用！
"te-st.ciao.su" 可以申请
   域名: te-st.ciao.su
   状态: 可申请
   注册时间: 未注册
   所有者: 无
`, buf.String())
}

func TestShowResultWithoutDetail(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	newTerminal(&buf, false).ShowResult(
		result(checker.KindUnavailable, "cc", "域名不可用", `"cc.ciao.su" 已被其他用户注册`, nil))

	require.Equal(t, `域名不可用
"cc.ciao.su" 已被其他用户注册
   域名: cc.ciao.su
   状态: 已注册
   注册时间: 未知
   所有者: 未知
`, buf.String())
}

func TestShowResultPaused(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	newTerminal(&buf, false).ShowResult(
		result(checker.KindZonePaused, "te-st", "域名暂停开放", "ciao.su 域名暂时不开放申请", nil))

	require.Contains(t, buf.String(), "   状态: 暂停开放\n   注册时间: 不适用\n   所有者: 不适用\n")
}

func detailRecord() *record.Record {
	created := time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC)
	return &record.Record{
		Owner:       &record.Owner{Name: "Alice", Email: "alice@example.com", GitHub: "alice"},
		Description: "个人博客",
		Entries: []record.Entry{
			{Type: record.TypeA, Name: "@", Content: "192.0.2.1", TTL: 3600, Proxied: false},
			{Type: record.TypeA, Name: "@", Content: "192.0.2.2", TTL: 3600, Proxied: false},
			{Type: record.TypeCNAME, Name: "www", Content: "alice.github.io", TTL: 3600, Proxied: true},
			{Type: record.TypeTXT, Name: "_verify", Content: "token", TTL: 3600, Proxied: false},
		},
		RecordCount:      4,
		RecordTypes:      []record.Type{record.TypeA, record.TypeCNAME, record.TypeTXT},
		LastModified:     now.AddDate(0, 0, -3),
		RegistrationDate: created,
		Creator:          &record.Creator{Name: "Bob", Date: created, GitHub: "bob"},
	}
}

func TestShowResultDetail(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	newTerminal(&buf, false).ShowResult(
		result(checker.KindUnavailable, "cc", "域名不可用", `"cc.ciao.su" 已被其他用户注册`, detailRecord()))
	out := buf.String()

	for _, line := range []string{
		"   状态: 已注册\n",
		"   注册时间: 2023年5月1日\n",
		"   所有者: Alice (@alice)\n",
		"   用途描述: 个人博客\n",
		"   GitHub 用户: https://github.com/alice\n",
		"   联系邮箱: al***e@example.com\n",
		"   域名创建者: @bob\n",
		"   DNS 记录: 4 条记录 (A, CNAME, TXT)\n",
		"     A     @ → 192.0.2.1\n",
		"     CNAME www → alice.github.io\n",
		"     查看全部 4 条记录 (SHOW_ALL_RECORDS=true)\n",
		"   最后更新: 2024年5月29日 (3天前)\n",
		"   配置文件: https://github.com/bestzwei/LibreDomains/blob/main/domains/ciao.su/cc.json\n",
	} {
		assert.Contains(t, out, line)
	}
	assert.NotContains(t, out, "_verify")
}

func TestShowResultAllRecords(t *testing.T) {
	t.Parallel()

	d := detailRecord()
	d.Creator.GitHub = "alice"

	var buf strings.Builder
	newTerminal(&buf, true).ShowResult(
		result(checker.KindUnavailable, "cc", "域名不可用", `"cc.ciao.su" 已被其他用户注册`, d))
	out := buf.String()

	require.Contains(t, out, "     TXT   _verify → token\n")
	require.NotContains(t, out, "查看全部")
	require.NotContains(t, out, "域名创建者")
}

func TestShowHint(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	term := newTerminal(&buf, false)

	term.ShowHint("子域名长度至少3个字符")
	term.ShowHint("子域名长度至少3个字符")
	term.ShowHint("")
	term.ShowHint("子域名长度至少3个字符")
	term.ClearResult()
	term.ShowHint("子域名长度至少3个字符")

	require.Equal(t, strings.Repeat("子域名长度至少3个字符\n", 3), buf.String())
}

func TestSubmitAndBusy(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	term := newTerminal(&buf, false)

	require.False(t, term.SubmitEnabled())
	term.SetSubmitEnabled(true)
	require.True(t, term.SubmitEnabled())

	term.SetBusy(true)
	term.SetBusy(true)
	term.SetBusy(false)
	require.Equal(t, "检测中...\n", buf.String())
}

func TestShowStats(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	term := newTerminal(&buf, false)

	term.ShowStats(registry.Stats{Zone: "ciao.su", ZoneCount: 2, Total: 3, Recent: []string{"aa", "bb"}, Degraded: false})
	term.ShowStats(registry.Stats{Zone: "ciao.su", ZoneCount: 1, Total: 1, Recent: nil, Degraded: true})

	require.Equal(t, `ciao.su: 已注册 2 个 / 全部 3 个
   aa bb
ciao.su: 已注册 1 个 / 全部 1 个
   暂无注册域名
无法连接到 GitHub API，显示的是缓存数据。完整数据请访问 https://github.com/bestzwei/LibreDomains/tree/main/domains
`, buf.String())
}

func TestEmoji(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	term := render.NewTerminal(&buf, render.Options{
		Owner: "o", Repo: "r", ShowAllRecords: false, Emoji: true, Now: nil, Location: nil,
	})
	term.ShowResult(result(checker.KindReserved, "www", "域名不可用", `"www" 是系统保留域名，无法申请`, nil))

	require.True(t, strings.HasPrefix(buf.String(), "❌ 域名不可用\n"))
	require.Contains(t, buf.String(), "   状态: 系统保留\n")
}
