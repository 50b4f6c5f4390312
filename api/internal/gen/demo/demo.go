// Package demo implements the completion gateway without network I/O. Every
// call returns the same sample recommendation, which keeps the service fully
// operable for demonstrations and offline runs.
package demo

import "context"

type Gateway struct{}

func New() *Gateway { return &Gateway{} }

func (g *Gateway) Name() string { return "demo" }

func (g *Gateway) Generate(ctx context.Context, description string) (string, error) {
	return SampleResponse, nil
}

// SampleResponse is the canned recommendation served in demo mode.
const SampleResponse = `
# Google Cloud Architecture Recommendation

## Recommended Services
- **Cloud Run**: Serverless container platform for your SaaS application
- **Cloud SQL (PostgreSQL)**: Managed relational database with high availability
- **Cloud Storage**: Object storage for file uploads and static assets
- **Cloud Pub/Sub**: Message queue for email notifications and async tasks
- **Cloud CDN**: Content delivery network for global performance
- **Identity Platform**: Authentication and user management with RBAC

## Architecture Overview
` + "```" + `
Internet → Cloud CDN → Cloud Load Balancer
                          ↓
                    Cloud Run (Auto-scaling)
                          ↓
        ┌─────────────────┼─────────────────┐
        ↓                 ↓                 ↓
    Cloud SQL       Cloud Storage      Pub/Sub
    (Primary DB)    (File Storage)   (Async Tasks)
` + "```" + `

## Scalability Considerations
1. **Auto-scaling**: Cloud Run scales 0→N based on traffic (handles work-hour spikes)
2. **Read replicas**: Add Cloud SQL read replicas for query performance
3. **Connection pooling**: Use Cloud SQL Proxy with connection limits
4. **Caching**: Implement Cloud Memorystore (Redis) for session/data caching
5. **Multi-region**: Deploy in multiple regions for global users

## Cost Optimization
1. **Pay-per-use**: Cloud Run charges only for actual request time
2. **Right-sizing**: Start with min instances = 0, scale based on actual load
3. **Storage lifecycle**: Move old files to Coldline/Archive storage classes
4. **Committed use**: Purchase 1-year commits for predictable workloads
5. **Budget alerts**: Set up billing alerts at 50%, 80%, 100% thresholds

## Security Recommendations
1. **VPC**: Run Cloud Run in VPC with private Cloud SQL connection
2. **IAM**: Use service accounts with least-privilege principles
3. **Identity Platform**: Built-in GDPR compliance features
4. **Encryption**: Enable customer-managed encryption keys (CMEK)
5. **Audit logs**: Enable Cloud Audit Logs for compliance tracking
6. **WAF**: Use Cloud Armor for DDoS protection and rate limiting

## Deployment Strategy
1. **CI/CD Pipeline**:
   - Cloud Build for automated builds on git push
   - Separate dev/staging/prod environments
   - Blue-green deployments with traffic splitting

2. **Infrastructure as Code**:
   - Terraform or Cloud Deployment Manager
   - Version control all infrastructure configs

3. **Monitoring**:
   - Cloud Monitoring for metrics and alerts
   - Cloud Logging for centralized logs
   - Error Reporting for exception tracking

## GDPR Compliance
- Data residency: Deploy in EU regions (europe-west1)
- Identity Platform: Built-in consent management
- Cloud DLP: Automatic PII detection and redaction
- Audit logs: 400-day retention for compliance

**Estimated Monthly Cost**: $500-2000 for 100k MAU (varies with actual usage patterns)
`
