package mocks

//go:generate mockery --name SampleStore --srcpkg github.com/idlefit/healthstat/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Oracle --srcpkg github.com/idlefit/healthstat/internal/core/oracle --output ./oracle --outpkg oraclemocks --with-expecter
