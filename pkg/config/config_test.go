package config_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/davidpeckham/vin/pkg/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("New", func() {
	It("generates defaults", func() {
		cfg := config.New()
		Expect(cfg.JobsNum).To(Equal(4))
		Expect(cfg.BatchSize).To(Equal(50_000))
		Expect(cfg.CacheDir).ToNot(BeEmpty())
		Expect(cfg.MyDB).To(Equal("vpic"))
	})

	It("uses options for setup", func() {
		cfg := config.New(
			config.OptDBPath("/tmp/vpic.db"),
			config.OptDumpDir("/tmp/vpic-dump"),
			config.OptJobsNum(8),
			config.OptBatchSize(100),
			config.OptMyHost("db.local"),
			config.OptMyUser("vpic"),
			config.OptMyPass("secret"),
			config.OptMyDB("vpic_mirror"),
		)
		Expect(cfg.DBPath).To(Equal("/tmp/vpic.db"))
		Expect(cfg.DumpDir).To(Equal("/tmp/vpic-dump"))
		Expect(cfg.JobsNum).To(Equal(8))
		Expect(cfg.BatchSize).To(Equal(100))
		Expect(cfg.MyHost).To(Equal("db.local"))
		Expect(cfg.MyUser).To(Equal("vpic"))
		Expect(cfg.MyPass).To(Equal("secret"))
		Expect(cfg.MyDB).To(Equal("vpic_mirror"))
	})

	It("expands a leading tilde in paths", func() {
		cfg := config.New(config.OptDBPath("~/vpic.db"))
		Expect(cfg.DBPath).ToNot(HavePrefix("~"))
		Expect(cfg.DBPath).To(HaveSuffix("vpic.db"))
	})
})
