/*
Package gaussian exposes gaussian uncertainty propagation as a service
provider.

Tools take variables as {"mean", "standard_deviation"} objects. Operations
that would leave the near-normal regime fail with a data.error_kind of
non_normal_result or zero_mean instead of returning a misleading value.

# Tools

  - gaussian.new, gaussian.format
  - gaussian.add, gaussian.subtract, gaussian.multiply, gaussian.divide
  - gaussian.pdf, gaussian.cdf, gaussian.quantile
  - gaussian.sample, gaussian.fit

Multiply and divide accept product_cv_limit, ratio_lambda and
ratio_gamma_factor to override the configured guard thresholds for one call.
*/
package gaussian
