package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/gluemodel/internal/config"
)

var envKeys = []string{
	"GLUEMODEL_LOG_LEVEL",
	"GLUEMODEL_LOG_FORMAT",
	"GLUEMODEL_OUTPUT_FORMAT",
	"GLUEMODEL_AWS_REGION",
	"GLUEMODEL_AWS_PROFILE",
	"GLUEMODEL_AWS_ENDPOINT",
	"AWS_REGION",
	"AWS_DEFAULT_REGION",
	"AWS_PROFILE",
	"AWS_ENDPOINT_URL_GLUE",
}

var _ = Describe("Config", func() {
	var (
		tempDir string
		saved   map[string]string
	)

	BeforeEach(func() {
		saved = map[string]string{}
		for _, key := range envKeys {
			if value, ok := os.LookupEnv(key); ok {
				saved[key] = value
			}
			os.Unsetenv(key)
		}

		var err error
		tempDir, err = os.MkdirTemp("", "gluemodel-config-test")
		Expect(err).NotTo(HaveOccurred())

		config.ResetConfig()
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		for key, value := range saved {
			os.Setenv(key, value)
		}
		config.ResetConfig()
	})

	Describe("DefaultConfig", func() {
		It("should return valid default configuration", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Log.Level).To(Equal("info"))
			Expect(cfg.Log.Format).To(Equal("text"))
			Expect(cfg.Output.Format).To(Equal("text"))
			Expect(cfg.AWS.Region).To(Equal("us-east-1"))
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Describe("LoadConfig", func() {
		Context("when config file does not exist", func() {
			It("should return an error", func() {
				_, err := config.LoadConfig(filepath.Join(tempDir, "nonexistent.yaml"))
				Expect(err).To(MatchError(ContainSubstring("config file does not exist")))
			})
		})

		Context("when no path is given", func() {
			It("should fall back to defaults", func() {
				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Log.Level).To(Equal("info"))
				Expect(cfg.AWS.Region).To(Equal("us-east-1"))
			})
		})

		Context("when config file exists", func() {
			It("should load configuration from file", func() {
				configPath := filepath.Join(tempDir, "config.yaml")
				configContent := `
log:
  level: debug
  format: json
output:
  format: json
aws:
  region: eu-west-1
  profile: analytics
  endpoint: http://localhost:4566
`
				Expect(os.WriteFile(configPath, []byte(configContent), 0644)).To(Succeed())

				cfg, err := config.LoadConfig(configPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Log.Level).To(Equal("debug"))
				Expect(cfg.Log.Format).To(Equal("json"))
				Expect(cfg.Output.Format).To(Equal("json"))
				Expect(cfg.AWS.Region).To(Equal("eu-west-1"))
				Expect(cfg.AWS.Profile).To(Equal("analytics"))
				Expect(cfg.AWS.Endpoint).To(Equal("http://localhost:4566"))
				Expect(config.GetConfig()).To(BeIdenticalTo(cfg))
			})

			It("should reject an invalid log level", func() {
				configPath := filepath.Join(tempDir, "config.yaml")
				Expect(os.WriteFile(configPath, []byte("log:\n  level: loud\n"), 0644)).To(Succeed())

				_, err := config.LoadConfig(configPath)
				Expect(err).To(MatchError(ContainSubstring("invalid log level")))
			})

			It("should reject malformed YAML", func() {
				configPath := filepath.Join(tempDir, "config.yaml")
				Expect(os.WriteFile(configPath, []byte("log: [unterminated\n"), 0644)).To(Succeed())

				_, err := config.LoadConfig(configPath)
				Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
			})
		})
	})

	Describe("environment variables", func() {
		It("should override defaults with the GLUEMODEL prefix", func() {
			os.Setenv("GLUEMODEL_LOG_LEVEL", "warn")
			os.Setenv("GLUEMODEL_OUTPUT_FORMAT", "json")

			cfg, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Log.Level).To(Equal("warn"))
			Expect(cfg.Output.Format).To(Equal("json"))
		})

		It("should fall back to the standard AWS variables", func() {
			os.Setenv("AWS_REGION", "ap-northeast-1")
			os.Setenv("AWS_PROFILE", "dev")

			cfg, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.AWS.Region).To(Equal("ap-northeast-1"))
			Expect(cfg.AWS.Profile).To(Equal("dev"))
		})

		It("should prefer the GLUEMODEL variable over the AWS one", func() {
			os.Setenv("AWS_REGION", "ap-northeast-1")
			os.Setenv("GLUEMODEL_AWS_REGION", "us-west-2")

			cfg, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.AWS.Region).To(Equal("us-west-2"))
		})
	})

	Describe("Set", func() {
		It("should update the loaded instance", func() {
			_, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())

			Expect(config.Set("output.format", "json")).To(Succeed())
			Expect(config.GetConfig().Output.Format).To(Equal("json"))
		})

		It("should report values that do not fit the configuration", func() {
			_, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())

			err = config.Set("log.level", map[string]any{"nested": true})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to apply log.level"))
		})
	})

	Describe("Validate", func() {
		DescribeTable("rejects invalid values",
			func(mutate func(*config.Config), message string) {
				cfg := config.DefaultConfig()
				mutate(cfg)
				Expect(cfg.Validate()).To(MatchError(ContainSubstring(message)))
			},
			Entry("log format", func(c *config.Config) { c.Log.Format = "xml" }, "invalid log format"),
			Entry("output format", func(c *config.Config) { c.Output.Format = "table" }, "invalid output format"),
			Entry("region", func(c *config.Config) { c.AWS.Region = "us" }, "invalid AWS region format"),
		)

		It("accepts upper-case log levels", func() {
			cfg := config.DefaultConfig()
			cfg.Log.Level = "DEBUG"
			Expect(cfg.Validate()).To(Succeed())
		})
	})
})
